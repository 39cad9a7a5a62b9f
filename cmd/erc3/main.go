package main

import (
	"os"

	"github.com/erc3/erc3-go/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
