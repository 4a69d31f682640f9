package main

import "github.com/Domenick1991/airport/cmd/airportctl/commands"

func main() {
	commands.Execute()
}
