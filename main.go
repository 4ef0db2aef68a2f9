package main

import "github.com/mouse-blink/mdcover/cmd"

func main() {
	cmd.Execute()
}
