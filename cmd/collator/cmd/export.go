package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exportFlags are the flags shared by the export commands.
type exportFlags struct {
	raw    bool
	output string
}

func (f *exportFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.raw, "raw", false, "write raw bytes instead of 0x-prefixed hex")
	flags.StringVarP(&f.output, "output", "o", "", "output file, stdout if empty")
}

// write writes data as hex with a 0x prefix, or raw, to the output file or
// the command's output.
func (f *exportFlags) write(cmd *cobra.Command, data []byte) error {
	out := data
	if !f.raw {
		out = []byte("0x" + hex.EncodeToString(data))
	}

	if f.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		if err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
		if !f.raw {
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	}

	err := os.WriteFile(f.output, out, 0644)
	if err != nil {
		return fmt.Errorf("could not write file: %w", err)
	}
	log.Info().Str("path", f.output).Int("bytes", len(out)).Msg("wrote file")
	return nil
}
