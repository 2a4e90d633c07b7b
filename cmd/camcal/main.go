package main

import "github.com/denismitr/camcal/internal/cli"

func main() {
	cli.Execute()
}
