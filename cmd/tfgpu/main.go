package main

import "tfgpu/internal/cli"

func main() {
	cli.Execute()
}
