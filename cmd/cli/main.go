package main

import "github.com/mediadex/mediatag/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
