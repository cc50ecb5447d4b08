// Package main provides the entry point for the expoui CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/expoui/internal/config"
	"github.com/gorewood/expoui/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	return execute(context.Background(), newRootCmd(), os.Args[1:])
}

// execute runs cmd with args through fang and maps the result to an exit code.
func execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	err := fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(reportUnhandled),
	)
	return output.GetExitCode(err)
}

// reportUnhandled prints errors that no command reported itself, such as
// cobra flag parsing failures. ExitErrors have already gone through a Printer.
func reportUnhandled(w io.Writer, _ fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	output.NewPrinter(w, false, output.IsTTY(w)).Error(err)
}

// newRootCmd creates the root command for the expoui CLI.
func newRootCmd() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "expoui <template-name>",
		Short: "Generate Expo UI screen templates",
		Long: `expoui writes a ready-to-edit Expo UI (SwiftUI) screen component to
ExpoUI<Name>Screen.jsx in the current directory.

Examples:
  expoui settings                 # writes ExpoUISettingsScreen.jsx
  expoui LOADING -o app/screens   # names are case-insensitive
  expoui glass --stdout           # print instead of writing
  expoui list                     # show available templates`,
		Version:       buildVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// tokens after the first are ignored
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			return runGenerate(cmd, token, toStdout)
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().String("config", "", "Config file; only an explicit file may set output_dir (default: $EXPOUI_CONFIG_HOME/config.yaml)")
	cmd.PersistentFlags().StringP("out-dir", "o", "", "Directory to write templates to (default: current directory)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the template instead of writing a file")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// settings are the effective options for a command after merging the
// config file with flags.
type settings struct {
	outDir string
	color  string
}

// loadSettings reads the config file and applies flag overrides.
// output_dir is only taken from a file named with --config; the default
// config file never moves output away from the working directory.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	path := config.Path()
	explicit := false
	if flag := cmd.Flags().Lookup("config"); flag != nil && flag.Changed {
		path = flag.Value.String()
		explicit = true
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	s := &settings{color: cfg.Color}
	if explicit {
		s.outDir = cfg.OutputDir
	}
	if flag := cmd.Flags().Lookup("out-dir"); flag != nil && flag.Changed {
		s.outDir = flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("color"); flag != nil && flag.Changed {
		if err := config.ValidateColor(flag.Value.String()); err != nil {
			return nil, output.NewUserError("--" + err.Error())
		}
		s.color = flag.Value.String()
	}
	return s, nil
}

// newPrinter builds the printer for cmd. If settings could not be loaded
// the returned error has already been printed.
func newPrinter(cmd *cobra.Command) (*output.Printer, *settings, error) {
	out := cmd.OutOrStdout()
	s, err := loadSettings(cmd)
	if err != nil {
		output.NewPrinter(out, isJSONMode(cmd), false).Error(err)
		return nil, nil, err
	}
	printer := output.NewPrinter(out, isJSONMode(cmd), output.ResolveColorMode(s.color, output.IsTTY(out)))
	return printer, s, nil
}
