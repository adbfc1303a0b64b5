package main

import (
	"github.com/thatguydan86/rentradar/cmd"
)

func main() {
	cmd.Execute()
}
