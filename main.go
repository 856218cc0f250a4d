package main

import "github.com/khanhnv2901/arch-health/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
