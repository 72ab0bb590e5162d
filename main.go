package main

import (
	"os"

	"pdf_util/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
