package main

import (
	"bl-extraction/cmd/cli/cmd"
)

func main() {
	cmd.Execute()
}
