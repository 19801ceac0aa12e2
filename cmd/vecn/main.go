// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vecn evaluates vector expressions written in the <c1, c2, ...>
// text form.
//
// Usage:
//
//	vecn info
//	vecn eval add "<1, 2, 3>" "<4, 5, 6>"
//	vecn eval --type float32 normalize "<3, 0, 4>"
//	vecn convert --to uint8 --policy saturating "<-1, 127.9, 300>"
//	vecn --locale de-DE eval scale "<1,5. 2>" 2
//	vecn sum --type int64 points.txt
//
// Defaults can be stored in a YAML file passed with --config; flags given
// on the command line take precedence.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-vecn/hwy"
	"github.com/ajroetker/go-vecn/numfmt"
)

// app carries the resolved configuration shared by all commands.
type app struct {
	cfg        config
	configPath string
	logger     *slog.Logger
	provider   numfmt.Provider
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "vecn",
		Short: "Evaluate and convert fixed-arity vectors",
		Long: `vecn parses vectors written as <c1, c2, ...> with two to five
components, applies vector operations and prints the result in the same
form. Component separators and decimal points follow the selected locale.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv("VECN_CONFIG"), "YAML file with default settings")
	flags.String("locale", "", "BCP 47 locale for separators (default: $"+numfmt.LocaleEnv+" or invariant)")
	flags.String("format", "", "component format specifier: G, R, Fn, En, Nn, Dn, Xn")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")

	rootCmd.AddCommand(newInfoCmd(a), newEvalCmd(a), newConvertCmd(a), newSumCmd(a))
	return rootCmd
}

// setup loads the configuration file, applies explicit flags over it and
// builds the logger and number format provider.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		cfg.set(f.Name, f.Value.String())
	})
	a.cfg = cfg

	a.logger, err = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if cfg.Locale == "" {
		a.provider = numfmt.Default()
	} else {
		c, err := numfmt.Lookup(cfg.Locale)
		if err != nil {
			return err
		}
		a.provider = c
	}

	hwy.LogDispatch(a.logger)
	a.logger.Debug("configuration",
		"config", a.configPath,
		"locale", a.provider.Name(),
		"format", cfg.Format,
		"type", cfg.Type,
		"policy", cfg.Policy,
	)
	return nil
}

func (a *app) println(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
