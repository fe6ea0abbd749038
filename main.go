package main

import "focusos/cmd"

func main() {
	cmd.Execute()
}
