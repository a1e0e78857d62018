package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zkasm",
	Short: "zkasm assembles zkVM programs",
	Long:  `zkasm is a tool for assembling textual zkVM assembly into instruction words.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "vm",
		Title: "Virtual machines",
	})

	rootCmd.AddCommand(zkvmCmd)
}
