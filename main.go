package main

import "github.com/mouse-blink/fnpack/cmd"

func main() {
	cmd.Execute()
}
