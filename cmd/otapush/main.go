package main

import "otapush/internal/cli"

func main() {
	cli.Execute()
}
