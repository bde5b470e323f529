package main

import "facemask/internal/cli"

func main() {
	cli.Execute()
}
