package main

import "github.com/dotcommander/mindscreen/cmd"

func main() {
	cmd.Execute()
}
