// Package cli implements the polaris-models command tree.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-polaris/internal/config"
	"github.com/goliatone/go-polaris/internal/logging"
	"github.com/goliatone/go-polaris/pkg/management"
	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/prompt"
)

// ErrInvalid is returned when a payload fails validation; the report has
// already been printed.
var ErrInvalid = errors.New("payload is invalid")

// Env carries the streams and collaborators the commands use.
type Env struct {
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Registry *model.Registry
	Driver   prompt.Driver
}

type globalFlags struct {
	unknown    string
	output     string
	configPath string
	logLevel   string
}

type state struct {
	env      Env
	flags    globalFlags
	settings config.Settings
	logger   *slog.Logger
}

// NewRootCmd builds the polaris-models command tree. Zero fields of env fall
// back to the process streams, the management registry and a survey driver.
func NewRootCmd(env Env) *cobra.Command {
	if env.In == nil {
		env.In = os.Stdin
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Err == nil {
		env.Err = os.Stderr
	}
	if env.Registry == nil {
		env.Registry = management.Registry()
	}
	st := &state{env: env}

	root := &cobra.Command{
		Use:           "polaris-models",
		Short:         "Inspect, validate and build Polaris management models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup()
		},
	}
	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&st.flags.unknown, "unknown", "", "unknown key policy: ignore, reject or retain")
	pf.StringVarP(&st.flags.output, "output", "o", "", "output format: json or yaml")
	pf.StringVar(&st.flags.configPath, "config", "", "config file (default ~/.config/polaris-models/config.yaml)")
	pf.StringVar(&st.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newSchemasCmd(st))
	root.AddCommand(newValidateCmd(st))
	root.AddCommand(newConvertCmd(st))
	root.AddCommand(newNewCmd(st))
	return root
}

func (st *state) setup() error {
	cfg, err := config.Load(st.flags.configPath)
	if err != nil {
		return err
	}
	settings, err := cfg.Merge(st.flags.unknown, st.flags.output, st.flags.logLevel)
	if err != nil {
		return err
	}
	logger, err := logging.Setup(st.env.Err, settings.LogLevel)
	if err != nil {
		return err
	}
	st.settings = settings
	st.logger = logger
	return nil
}

func (st *state) decodeOptions() []model.DecodeOption {
	return []model.DecodeOption{
		model.WithUnknownPolicy(st.settings.Unknown),
		model.WithResolver(st.env.Registry),
	}
}

func (st *state) driver() prompt.Driver {
	if st.env.Driver != nil {
		return st.env.Driver
	}
	return prompt.NewSurveyDriver()
}
