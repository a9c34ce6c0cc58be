package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <model> [file|-]",
		Short: "Decode a payload and re-encode it in canonical form",
		Long: "Decode a JSON or YAML payload as the named model and print its wire form.\n" +
			"Keys follow declaration order; unknown keys follow the --unknown policy.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd.InOrStdin(), argAt(args, 1))
			if err != nil {
				return err
			}
			m, err := st.env.Registry.Decode(args[0], payload, st.decodeOptions()...)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			return encode(cmd.OutOrStdout(), st.settings.Output, m.ToWire())
		},
	}
}
