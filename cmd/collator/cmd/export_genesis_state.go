package cmd

import (
	"github.com/spf13/cobra"

	"github.com/addchain/collator/model/parachain"
)

var genesisStateFlags exportFlags

var exportGenesisStateCmd = &cobra.Command{
	Use:   "export-genesis-state",
	Short: "Export the encoded genesis head of the parachain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return genesisStateFlags.write(cmd, parachain.Genesis().Encode())
	},
}

func init() {
	rootCmd.AddCommand(exportGenesisStateCmd)
	genesisStateFlags.register(exportGenesisStateCmd.Flags())
}
