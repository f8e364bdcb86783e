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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonyteate/gqlcore/pkg/gqlerrors"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/parser"
	"github.com/tonyteate/gqlcore/pkg/source"
)

var checkCmd = &cobra.Command{
	Use:     "check [files...]",
	Short:   "check parses each file (or stdin) and reports the first syntax error",
	Example: "gqlparse check schema.graphql request.graphql",
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if len(files) == 0 {
			files = []string{"-"}
		}
		for _, f := range files {
			if err := checkOne(cmd, f); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkOne(cmd *cobra.Command, path string) error {
	body, name, err := readInput(path)
	if err != nil {
		return err
	}

	_, err = parser.Parse(source.NewWithName(body, name), options.Default())
	if err != nil {
		printSyntaxError(cmd, name, err)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", au.Green("ok"), name)
	log.Info("parsed document", logFields(name)...)
	return nil
}

func printSyntaxError(cmd *cobra.Command, name string, err error) {
	if se, ok := err.(*gqlerrors.Error); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", au.Red("error"), name, se.Error())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", au.Red("error"), name, err)
}

// readInput reads path, or stdin when path is "-", returning the body and a
// display name suitable for a Source.
func readInput(path string) (body, name string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}
