package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mitte-amd64",
	Short: "AMD64 machine-code emitter",
	Long:  `Tools built on the mitte-amd64 instruction encoder.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "examples",
		Title: "Example code generators",
	})

	rootCmd.AddCommand(brainfuckCmd)
}
