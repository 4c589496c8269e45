package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ksload/internal/services"
)

func newInstructionsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "instructions",
		Short: "Print how to download the dataset from Kaggle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}
			services.Instructions(cmd.OutOrStdout(), filepath.Dir(settings.CSVPath))
			return nil
		},
	}
}
