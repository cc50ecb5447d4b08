// Package output provides structured output handling for the expoui CLI.
//
// Every command writes through a Printer, which renders either styled
// human-readable text or JSON depending on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Generated ExpoUIFormScreen.jsx"})
//	printer.Error(err)
//
// # JSON Mode
//
//	// Success: {"template": "...", "file": "...", ...}
//	// Error:   {"error": "message", "code": N, "available": [...]}
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: template written
//	output.ExitUserError   // 1: missing or unknown template name, bad flags
//	output.ExitSystemError // 2: the output file could not be written
//
// Errors built with NewUserError and NewSystemErrorWithCause carry these codes, and
// WithChoices attaches the list of valid template names so the printer can
// show it next to the message.
package output
