package main

import "github.com/arc-engines/arc/cmd/arc/cmd"

func main() {
	cmd.Execute()
}
