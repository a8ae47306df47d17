// Command sqlgen generates the typed SQL grammar interfaces.
package main

import (
	"os"

	"github.com/zoobzio/typedsql/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
