package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heathj/webengine/parser"
	"github.com/heathj/webengine/script"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "webengine",
		Short: "Tokenize, parse and query HTML documents",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log tree construction details")

	rootCmd.AddCommand(
		tokensCmd(),
		parseCmd(),
		queryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// readInput reads the named file, or stdin when name is "-".
func readInput(name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := readInput(args[0])
			if err != nil {
				return err
			}
			tokens, err := parser.Tokenize(html)
			for _, t := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s\n", t.TokenType, t)
			}
			return err
		},
	}
}

func parseCmd() *cobra.Command {
	var (
		dump     bool
		asHTML   bool
		noStyles bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the tree built from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := readInput(args[0])
			if err != nil {
				return err
			}
			doc, err := parser.Parse(html, parser.WithInlineStyles(!noStyles))
			if err != nil {
				return err
			}
			switch {
			case dump:
				fmt.Fprint(cmd.OutOrStdout(), doc.Dump())
				return nil
			case asHTML:
				fmt.Fprintln(cmd.OutOrStdout(), parser.SerializeHTML(doc))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Draw the tree instead of the indented listing")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Write the tree back out as markup")
	cmd.Flags().BoolVar(&noStyles, "no-styles", false, "Do not apply style attributes")

	return cmd
}

func queryCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "query <file> <selector>",
		Short: "Look up nodes by #id, .class or tag name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := readInput(args[0])
			if err != nil {
				return err
			}
			doc, err := parser.Parse(html)
			if err != nil {
				return err
			}
			b := script.NewDOMBinding()
			if err := b.BindDOM(doc); err != nil {
				return err
			}
			if !all {
				n, err := b.QuerySelector(args[1])
				if err != nil {
					return err
				}
				if n != nil {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			}
			nodes, err := b.QuerySelectorAll(args[1])
			if err != nil {
				return err
			}
			for _, n := range nodes {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every match, not just the first")

	return cmd
}
