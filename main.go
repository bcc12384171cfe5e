package main

import "margincast/cmd"

func main() {
	cmd.Execute()
}
