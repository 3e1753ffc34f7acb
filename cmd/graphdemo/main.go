package main

import "github.com/rsolonenko/graphkit/cmd/graphdemo/commands"

func main() {
	commands.Execute()
}
