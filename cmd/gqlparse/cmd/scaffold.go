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

	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/parser"
	"github.com/tonyteate/gqlcore/pkg/source"
)

var scaffoldCmd = &cobra.Command{
	Use:     "scaffold [file]",
	Short:   "scaffold prints Go-safe constant names for a type-system document's names",
	Long: `scaffold walks a parsed type-system document and prints a Go-safe
constant name for every type and field name it finds, using strcase. It is a
small illustrative consumer of the AST aimed at codegen authors - it does
not validate or execute anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		body, name, err := readInput(path)
		if err != nil {
			return err
		}

		doc, err := parser.Parse(source.NewWithName(body, name), options.Options{NoLocation: true})
		if err != nil {
			printSyntaxError(cmd, name, err)
			return err
		}

		for _, def := range doc.Definitions {
			printScaffoldEntry(cmd, def)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
}

func printScaffoldEntry(cmd *cobra.Command, def ast.Definition) {
	out := cmd.OutOrStdout()
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		fmt.Fprintf(out, "const %s = %q // scalar\n", constName("Scalar", d.Name.Value), d.Name.Value)
	case *ast.ObjectTypeDefinition:
		fmt.Fprintf(out, "const %s = %q // type\n", constName("Type", d.Name.Value), d.Name.Value)
		for _, f := range d.Fields {
			fmt.Fprintf(out, "const %s = %q // field\n", constName(d.Name.Value, f.Name.Value), f.Name.Value)
		}
	case *ast.InterfaceTypeDefinition:
		fmt.Fprintf(out, "const %s = %q // interface\n", constName("Interface", d.Name.Value), d.Name.Value)
		for _, f := range d.Fields {
			fmt.Fprintf(out, "const %s = %q // field\n", constName(d.Name.Value, f.Name.Value), f.Name.Value)
		}
	case *ast.UnionTypeDefinition:
		fmt.Fprintf(out, "const %s = %q // union\n", constName("Union", d.Name.Value), d.Name.Value)
	case *ast.EnumTypeDefinition:
		fmt.Fprintf(out, "const %s = %q // enum\n", constName("Enum", d.Name.Value), d.Name.Value)
		for _, v := range d.Values {
			fmt.Fprintf(out, "const %s = %q // enum value\n", constName(d.Name.Value, v.Name.Value), v.Name.Value)
		}
	case *ast.InputObjectTypeDefinition:
		fmt.Fprintf(out, "const %s = %q // input\n", constName("Input", d.Name.Value), d.Name.Value)
		for _, f := range d.Fields {
			fmt.Fprintf(out, "const %s = %q // input field\n", constName(d.Name.Value, f.Name.Value), f.Name.Value)
		}
	}
}

func constName(prefix, name string) string {
	return strcase.ToCamel(prefix) + strcase.ToCamel(name)
}
