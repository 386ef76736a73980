package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/golia-dev/golia/pkg/transpile"
)

func transpileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transpile [file]",
		Short: "Convert HTML to builder code",
		Long: `Convert an HTML document to equivalent builder code.

Reads from the given file, or stdin when no file is passed. The
conversion is best-effort: malformed markup degrades to approximate
output instead of failing.

Examples:
  golia transpile page.html
  cat page.html | golia transpile
  golia transpile page.html -o page_gen.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranspile(args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write result to file instead of stdout")

	return cmd
}

func runTranspile(args []string, output string) error {
	var html []byte
	var err error
	if len(args) == 1 {
		html, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		html, err = io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
	}

	code := transpile.Document(string(html))

	if output == "" {
		fmt.Println(code)
		return nil
	}
	if err := os.WriteFile(output, []byte(code+"\n"), 0o644); err != nil {
		return err
	}
	success("wrote %s", output)
	return nil
}
