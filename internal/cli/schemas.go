package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSchemasCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas [model]",
		Short: "List registered models, or print one descriptor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				schema, ok := st.env.Registry.Schema(args[0])
				if !ok {
					return fmt.Errorf("unknown model %q", args[0])
				}
				return encode(out, st.settings.Output, schema)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tFIELDS\tREQUIRED")
			for _, schema := range st.env.Registry.Schemas() {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", schema.Name, len(schema.Fields), len(schema.Required()))
			}
			return tw.Flush()
		},
	}
}
