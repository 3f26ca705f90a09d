package main

import "github.com/battlesnakeio/termsnake/cmd/snake/commands"

func main() {
	commands.Execute()
}
