package main

import "easel/internal/cli"

func main() {
	cli.Execute()
}
