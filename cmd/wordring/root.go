package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordring/internal/config"
	"github.com/katalvlaran/wordring/internal/logging"
)

// errNotChainable is returned by check under --exit-code when the words do
// not chain; main maps it to exit status 2.
var errNotChainable = errors.New("words do not chain")

// app carries state shared by the subcommands of one root command.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
}

// newRootCmd builds a fresh command tree with its own viper instance. The
// returned app holds the configuration and logger once PersistentPreRunE ran.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "wordring",
		Short: "Decide whether words can be chained into a circle",
		Long: `wordring answers one question: can the given words be arranged in a
circle so that every word ends with the letter the next word starts with?

Settings come from flags, WORDRING_* environment variables, an optional
config file (--config) and built-in defaults, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.logger.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	mustBind(a.v, config.KeyLogLevel, pf.Lookup("log-level"))
	mustBind(a.v, config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(newCheckCmd(a), newVersionCmd())

	return root, a
}

// mustBind binds a flag that is defined alongside it; failure is a programming error.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("wordring: bind %s: %v", key, err))
	}
}
