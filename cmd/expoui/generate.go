package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/expoui/internal/emit"
	"github.com/gorewood/expoui/internal/output"
	"github.com/gorewood/expoui/internal/snippet"
)

const usageText = `Expo UI Component Template Generator

Generates boilerplate code for common Expo UI patterns.
Usage: expoui <template-name>`

// runGenerate writes the template named by token, or prints it with --stdout.
func runGenerate(cmd *cobra.Command, token string, toStdout bool) error {
	printer, s, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	emitter := emit.New(snippet.Default(), s.outDir)

	if snippet.Normalize(token) == "" {
		return printUsage(printer, emitter)
	}

	if toStdout {
		if _, err := emitter.WriteTo(cmd.OutOrStdout(), token); err != nil {
			printer.Error(err)
			return err
		}
		return nil
	}

	result, err := emitter.Emit(cmd.Context(), token)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	details := []string{"Template type: " + result.Name}
	if emitter.Dir() != "." {
		details = append(details, "Path: "+result.Path)
	}
	return printer.Success(map[string]any{
		"message": "Generated " + result.File,
		"details": details,
	})
}

// printUsage reports a missing template name. Human mode shows the usage
// text with every template; JSON mode emits the structured error.
func printUsage(printer *output.Printer, emitter *emit.Emitter) error {
	_, err := emitter.Resolve("")
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) {
		return err
	}

	if printer.IsJSON() {
		printer.Error(exitErr)
		return exitErr
	}

	printer.Println(usageText)
	printer.List("Available templates:", exitErr.Choices)
	return exitErr
}
