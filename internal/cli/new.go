package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/prompt"
	"github.com/goliatone/go-polaris/pkg/wire"
)

func newNewCmd(st *state) *cobra.Command {
	var (
		sets        []string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "new <model>",
		Short: "Construct a model from flags or prompts and print it",
		Example: "  polaris-models new AwsIamServiceIdentityInfo --set iamArn=arn:aws:iam::111122223333:user/polaris-service-user\n" +
			"  polaris-models new Principal --interactive",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, ok := st.env.Registry.Schema(args[0])
			if !ok {
				return fmt.Errorf("unknown model %q", args[0])
			}

			obj, err := applySets(schema, sets)
			if err != nil {
				return err
			}
			if interactive {
				obj, err = prompt.Collect(cmd.Context(), schema, st.driver(),
					prompt.WithResolver(st.env.Registry),
					prompt.WithDefaults(obj),
					prompt.WithDecodeOptions(st.decodeOptions()...),
				)
				if err != nil {
					return err
				}
			}

			m, err := st.env.Registry.Decode(schema.Name, wire.ObjectValue(obj), st.decodeOptions()...)
			if err != nil {
				return fmt.Errorf("new %s: %w", schema.Name, err)
			}
			st.logger.Debug("built model", "model", schema.Name, "sets", len(sets), "interactive", interactive)
			return encode(cmd.OutOrStdout(), st.settings.Output, m.ToWire())
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value; field is the wire or internal name, value is JSON or a bare string")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for fields")
	return cmd
}

// applySets builds a payload from --set pairs in declaration order.
func applySets(schema model.Schema, sets []string) (*wire.Object, error) {
	values := make(map[string]wire.Value, len(sets))
	for _, set := range sets {
		name, raw, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: expected field=value", set)
		}
		field, ok := schema.Field(strings.TrimSpace(name))
		if !ok {
			field, ok = schema.FieldByName(strings.TrimSpace(name))
		}
		if !ok {
			return nil, fmt.Errorf("--set %q: %s has no field %q", set, schema.Name, name)
		}
		values[field.WireName] = setValue(raw)
	}

	obj := wire.NewObject()
	for _, field := range schema.Fields {
		if v, ok := values[field.WireName]; ok {
			obj.Set(field.WireName, v)
		}
	}
	return obj, nil
}

func setValue(raw string) wire.Value {
	if v, err := wire.Parse([]byte(raw)); err == nil {
		return v
	}
	return wire.String(raw)
}
