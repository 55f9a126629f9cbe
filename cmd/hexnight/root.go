package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys, also the names of the flags bound to them.
const (
	keyLogLevel = "log-level"
	keyLogFile  = "log-file"
	keyColor    = "color"
	keyFormat   = "format"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg     *viper.Viper
	cfgFile string
	logger  *slog.Logger
	logFile io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New()}

	root := &cobra.Command{
		Use:   "hexnight",
		Short: "Name ARM64 system registers in decompiled code",
		Long: `hexnight decodes the op0/op1/CRn/CRm/op2 operands of ARM64 system
instructions and shows the architectural register name instead.

Example:
  hexnight annotate kernel.elf
  hexnight resolve 3 0 0 0 0
  hexnight table --format yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.hexnight.yaml)")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(keyLogFile, "", "also write JSON logs to this file")
	flags.String(keyColor, "auto", "color output: auto, always or never")

	for _, key := range []string{keyLogLevel, keyLogFile, keyColor} {
		cobra.CheckErr(a.cfg.BindPFlag(key, flags.Lookup(key)))
	}

	root.AddCommand(
		newAnnotateCmd(a),
		newDisasmCmd(a),
		newResolveCmd(a),
		newTableCmd(a),
	)

	return root
}

// setup reads the config file and the environment, then builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cmd.ErrOrStderr(),
		a.cfg.GetString(keyLogLevel), a.cfg.GetString(keyLogFile))
	if err != nil {
		return err
	}
	a.logger = logger
	a.logFile = closer

	if err := setColorMode(a.cfg.GetString(keyColor)); err != nil {
		return err
	}

	if used := a.cfg.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", "file", used)
	}

	return nil
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.cfg.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.cfg.AddConfigPath(home)
		}
		a.cfg.SetConfigType("yaml")
		a.cfg.SetConfigName(".hexnight")
	}

	a.cfg.SetEnvPrefix("HEXNIGHT")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	if err := a.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func setColorMode(mode string) error {
	switch mode {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid color mode %q", mode)
	}
	return nil
}
