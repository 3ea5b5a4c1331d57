package main

import "github.com/mouse-blink/flownorm/cmd"

func main() {
	cmd.Execute()
}
