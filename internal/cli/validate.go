package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-polaris/pkg/validation"
)

func newValidateCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model> [file|-]",
		Short: "Validate a payload and print the issues",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd.InOrStdin(), argAt(args, 1))
			if err != nil {
				return err
			}
			_, result := validation.Check(st.env.Registry, args[0], payload, st.decodeOptions()...)
			st.logger.Debug("validated payload", "model", args[0], "valid", result.Valid, "issues", len(result.Issues))
			if err := encode(cmd.OutOrStdout(), st.settings.Output, result); err != nil {
				return err
			}
			if !result.Valid {
				return ErrInvalid
			}
			return nil
		},
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
