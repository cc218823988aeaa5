package main

import (
	"github.com/davidgomes/haxball-clone/internal/cli"
)

func main() {
	cli.Execute()
}
