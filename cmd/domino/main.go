package main

import "github.com/marshallshelly/domino/cmd/domino/commands"

func main() {
	commands.Execute()
}
