package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type avltoolApp struct {
	baseCmd    *cobra.Command
	baseConfig *baseConfiguration
}

// New creates the avltool application.
func New() *avltoolApp {
	baseCmd, baseConfig := newBaseCmd()
	return &avltoolApp{baseCmd: baseCmd, baseConfig: baseConfig}
}

// Execute adds all child commands and runs the application.
func (a *avltoolApp) Execute(ctx context.Context) error {
	return a.addAndExecuteCommand(ctx)
}

func (a *avltoolApp) addAndExecuteCommand(ctx context.Context) error {
	a.baseCmd.AddCommand(newBenchCmd(a.baseConfig))
	a.baseCmd.AddCommand(newDumpCmd(a.baseConfig))
	return a.baseCmd.ExecuteContext(ctx)
}

func newBaseCmd() (*cobra.Command, *baseConfiguration) {
	config := &baseConfiguration{}
	baseCmd := &cobra.Command{
		Use:           "avltool",
		Short:         "Exercise and inspect AVL trees",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Subcommands do not define their own PersistentPreRunE, so
			// this runs for every one of them.
			if err := initializeConfig(cmd, config); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	config.addConfigurationFlags(baseCmd)
	return baseCmd, config
}

func initializeConfig(cmd *cobra.Command, config *baseConfiguration) error {
	// The logger is built from flag values, so they must be bound first.
	if err := bindFlags(cmd, newViper()); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if err := config.initLogger(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	// A flag like --seed is read from AVLTOOL_SEED.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// bindFlags applies values from the environment to the flags of cmd which
// were not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so --log-level
		// is bound to AVLTOOL_LOG_LEVEL explicitly.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				errs = append(errs, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, fmt.Errorf("setting flag %q value: %w", f.Name, err))
			}
		}
	})
	return errors.Join(errs...)
}
