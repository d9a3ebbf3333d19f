package main

import "pjbench/cmd"

func main() {
	cmd.Execute()
}
