package main

import "radtui/cmd/radtui/cmd"

func main() {
	cmd.Execute()
}
