package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "qrbatch",
	Short: "Batch-decode QR symbols from a YAML job file",
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
