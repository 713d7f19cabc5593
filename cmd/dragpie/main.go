package main

import "github.com/philipparndt/dragpie/cmd"

func main() {
	cmd.Execute()
}
