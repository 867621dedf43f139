// Command argspec lints argument declarations and resolves command lines against them.
//
//	argspec lint spec.yaml
//	argspec check spec.yaml -- --fast -o out.txt input
//	argspec check spec.toml --line "--mode fast 'my input'"
//	argspec explain "-o, --output <FILE> 'where to write'"
package main

import (
	"errors"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		os.Exit(1)
	}
}
