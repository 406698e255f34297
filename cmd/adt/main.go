package main

import "github.com/magical/recursive-adts/internal/cli"

func main() {
	cli.Execute()
}
