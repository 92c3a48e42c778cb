package main

import "github.com/rybkr/crossword/cmd"

func main() {
	cmd.Execute()
}
