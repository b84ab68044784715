package main

import (
	"github.com/41v4/img-manipulation/cmd"
)

func main() {
	cmd.Main()
}
