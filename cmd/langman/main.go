package main

import (
	"langman/internal/cli"
)

func main() {
	cli.Execute()
}
