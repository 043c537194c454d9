package main

import "github.com/johomo/advent-of-code-2023/internal/cli"

func main() {
	cli.Execute()
}
