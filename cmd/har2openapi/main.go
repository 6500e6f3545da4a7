package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "har2openapi",
	Short: "Generate OpenAPI descriptions from HAR captures",
	Long: `har2openapi converts HTTP Archive (HAR) captures into OpenAPI 3.0
descriptions. Bodies are reduced to inferred schemas, sensitive values are
redacted and concrete resource IDs become path template parameters.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
