package main

import "github.com/emiliopalmerini/aidash/internal/cli"

func main() {
	cli.Execute()
}
