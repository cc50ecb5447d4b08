package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/expoui/internal/snippet"
)

// templateInfo is the JSON shape of a list entry.
type templateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	File        string `json:"file"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	printer, _, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	templates := snippet.Default().Templates()
	infos := make([]templateInfo, 0, len(templates))
	for _, tmpl := range templates {
		infos = append(infos, templateInfo{
			Name:        tmpl.Name,
			Description: tmpl.Description,
			File:        snippet.FileName(tmpl.Name),
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"templates": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Name, info.Description, info.File})
	}
	printer.Table([]string{"NAME", "DESCRIPTION", "FILE"}, rows)
	return nil
}
