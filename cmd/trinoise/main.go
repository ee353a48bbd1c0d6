// Command trinoise generates, profiles and renders deterministic
// three-valued noise signatures.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/trinoise/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trinoise:", err)
		os.Exit(1)
	}
}
