package main

import "github.com/miditools/muse/cmd"

func main() {
	cmd.Execute()
}
