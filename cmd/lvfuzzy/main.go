// SPDX-License-Identifier: MIT

// Command lvfuzzy loads a fuzzy rule model and answers inference queries.
//
//	lvfuzzy infer delay=0.25 servers=0.5 util=0.7
//	lvfuzzy explain --model plant.toml --input temp=31
//	lvfuzzy terms
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvfuzzy/cmd/lvfuzzy/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
