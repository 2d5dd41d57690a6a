package main

import (
	"github.com/mcoot/chessfed-go/internal/cli"
)

func main() {
	cli.Execute()
}
