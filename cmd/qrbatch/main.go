// Command qrbatch decodes a list of QR-symbol images described by a YAML
// job file and reports per-file results.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
