package cmd

import (
	"github.com/keurnel/zkasm/cmd/zkasm/cmd/zkvm"
	"github.com/spf13/cobra"
)

var zkvmCmd = &cobra.Command{
	Use:     "zkvm",
	GroupID: "vm",
	Short:   "zkVM register machine",
	Long:    `Functions related to the zkVM register machine.`,
}

func init() {
	zkvmCmd.AddGroup(&cobra.Group{
		ID:    "file-operations",
		Title: "File operations",
	})

	zkvmCmd.AddCommand(zkvm.AssembleFileCmd)
}
