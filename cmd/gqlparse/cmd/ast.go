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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/parser"
	"github.com/tonyteate/gqlcore/pkg/source"
)

var (
	astFormat    string
	astLocations bool
)

var astCmd = &cobra.Command{
	Use:     "ast [file]",
	Short:   "ast parses a document and prints the resulting AST",
	Example: "gqlparse ast schema.graphql --format yaml --locations",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		body, name, err := readInput(path)
		if err != nil {
			return err
		}

		doc, err := parser.Parse(source.NewWithName(body, name), options.Options{NoLocation: !astLocations})
		if err != nil {
			printSyntaxError(cmd, name, err)
			return err
		}

		switch astFormat {
		case "yaml":
			out, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
		default:
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVar(&astFormat, "format", "json", "output format: json or yaml")
	astCmd.Flags().BoolVar(&astLocations, "locations", false, "include source locations in the printed AST")
}
