// Prompt Architect - structured prompts for AI chat assistants
package main

import (
	"os"

	"github.com/HartBrook/promptarchitect/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
