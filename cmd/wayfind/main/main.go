package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wayfind/cmd/wayfind"
	"github.com/arthur-debert/wayfind/pkg/display/styles"
)

func main() {
	rootCmd := wayfind.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
