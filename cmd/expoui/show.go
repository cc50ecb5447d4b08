package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/expoui/internal/emit"
	"github.com/gorewood/expoui/internal/snippet"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-name>",
		Short: "Print a template without writing a file",
		Long: `Show prints the source of a template to stdout.

With --json the output is {"template", "file", "content"}.

Examples:
  expoui show form
  expoui show navigation > Nav.jsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			return runShow(cmd, token)
		},
	}
}

func runShow(cmd *cobra.Command, token string) error {
	printer, _, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	emitter := emit.New(snippet.Default(), "")

	if !printer.IsJSON() {
		if _, err := emitter.WriteTo(cmd.OutOrStdout(), token); err != nil {
			printer.Error(err)
			return err
		}
		return nil
	}

	tmpl, err := emitter.Resolve(token)
	if err != nil {
		printer.Error(err)
		return err
	}
	return printer.WriteJSON(map[string]any{
		"template": tmpl.Name,
		"file":     snippet.FileName(tmpl.Name),
		"content":  tmpl.Body,
	})
}
