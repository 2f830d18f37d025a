package cmd

import (
	"github.com/spf13/cobra"

	"github.com/addchain/collator/stf"
)

var genesisWasmFlags exportFlags

// the validation code takes the place of the wasm blob of a substrate
// parachain; the command keeps the familiar name
var exportGenesisWasmCmd = &cobra.Command{
	Use:   "export-genesis-wasm",
	Short: "Export the validation code of the parachain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return genesisWasmFlags.write(cmd, stf.Code().Bytes())
	},
}

func init() {
	rootCmd.AddCommand(exportGenesisWasmCmd)
	genesisWasmFlags.register(exportGenesisWasmCmd.Flags())
}
