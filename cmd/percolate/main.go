package main

import "github.com/katalvlaran/percolate/cmd/percolate/commands"

func main() {
	commands.Execute()
}
