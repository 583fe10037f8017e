package main

import "multijdk/internal/cli"

func main() {
	cli.Execute()
}
