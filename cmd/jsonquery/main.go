// Package main implements the jsonquery command-line interface: apply a
// query to a JSON document read from a file or stdin and print the result.
//
// Examples:
//
//	jsonquery '.friends | sort(.age) | pick(.name)' people.json
//	cat people.json | jsonquery 'map(.name) | join(", ")'
//	jsonquery --ast '.a.b'
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/seijihariki/jsonquery"
	"github.com/seijihariki/jsonquery/internal/value"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var showAST bool

	cmd := &cobra.Command{
		Use:   "jsonquery <query> [file]",
		Short: "Query and transform JSON documents",
		Long: `jsonquery applies a query expression to a JSON document and prints
the result. The document is read from the given file, or from stdin when
no file is provided.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showAST {
				return printAST(cmd.OutOrStdout(), args[0])
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			data, err := value.FromJSON(input)
			if err != nil {
				return fmt.Errorf("invalid JSON input: %w", err)
			}

			result, err := jsonquery.Query(data, args[0], nil)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())

			return nil
		},
	}

	cmd.Flags().BoolVar(&showAST, "ast", false, "parse the query and print its structured form instead of running it")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 2 {
		return os.ReadFile(args[1])
	}

	return io.ReadAll(cmd.InOrStdin())
}

func printAST(w io.Writer, query string) error {
	expr, err := jsonquery.Parse(query, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, jsonquery.StructuredForm(expr).String())

	return nil
}
