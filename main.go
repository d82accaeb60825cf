package main

import "github.com/qnote/qnote/cmd"

func main() {
	cmd.Execute()
}
