/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/jensneuse/abstractlogger"
	"github.com/logrusorgru/aurora/v3"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	cfgFile  string
	useColor bool

	// log is the process-wide logger. It is built around a zap core (see
	// initLogger) but exposed to command files as an abstractlogger.Logger
	// so they log through a single-method-per-level interface instead of
	// depending on zap's field constructors directly.
	log abstractlogger.Logger
	au  aurora.Aurora
)

// rootCmd is gqlparse: the thin CLI front end over this module's three
// public entry points (parser.Parse, parser.ParseValue, parser.ParseType).
// It contains no grammar logic of its own.
var rootCmd = &cobra.Command{
	Use:   "gqlparse",
	Short: "gqlparse parses GraphQL documents, values, and type references",
	Long: `gqlparse is a thin command-line front end over this module's parser.

It exercises the library's three public entry points - parsing a whole
document, a standalone value literal, or a standalone type reference -
against files or stdin, and is not itself part of the grammar.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

// Execute adds all child commands to the root command and runs it. Called
// by main.main(); on error it prints the error and exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gqlparse.yaml)")
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", isatty.IsTerminal(os.Stderr.Fd()), "colorize diagnostic output")
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

// initConfig reads in a config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigName(".gqlparse")
	}

	viper.SetEnvPrefix("GQLPARSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.ConfigFileUsed() != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if viper.IsSet("color") {
		useColor = viper.GetBool("color")
	}
	au = aurora.NewAurora(useColor)
}

// logFields is a small convenience wrapper so command files don't each need
// to import abstractlogger just to tag a log line with the file a command is
// acting on.
func logFields(name string) []abstractlogger.Field {
	return []abstractlogger.Field{abstractlogger.String("source", name)}
}

// initLogger builds the process-wide logger: a human-readable console
// encoder over go-colorable's ANSI-safe writer when stderr is a TTY, a JSON
// encoder otherwise (e.g. when output is captured by CI or piped to a file).
// The zap core doing the actual writing is wrapped in an abstractlogger.Logger
// so the rest of the CLI depends on that narrower interface, not on zap.
func initLogger() error {
	var encoder zapcore.Encoder
	level := zap.NewAtomicLevelAt(zap.InfoLevel)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	sink := zapcore.AddSync(colorable.NewColorable(os.Stderr))
	zapLogger := zap.New(zapcore.NewCore(encoder, sink, level))
	log = abstractlogger.NewZapLogger(zapLogger, abstractlogger.InfoLevel)
	return nil
}
