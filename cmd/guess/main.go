package main

import (
	"os"

	"github.com/idilsaglam/guess/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
