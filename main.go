package main

import "github.com/kozaktomas/face-trainer/cmd"

func main() {
	cmd.Execute()
}
