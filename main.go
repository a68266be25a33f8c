package main

import "github.com/hireloop/takehome-forge/cmd"

func main() {
	cmd.Execute()
}
