package main

import "github.com/mason-dev/mason/cmd"

func main() {
	cmd.Execute()
}
