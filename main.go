package main

import "anvil/cmd"

func main() {
	cmd.Execute()
}
