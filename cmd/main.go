package main

import "parth-agrotech/cmd/commands"

func main() {
	commands.Execute()
}
