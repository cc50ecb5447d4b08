package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Bold    lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Bold:    lipgloss.NewStyle().Bold(true),
	}

	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is styled.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, prints the "message" key followed by any "details" lines.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
	}
	if details, ok := data["details"].([]string); ok {
		for _, line := range details {
			mustWrite(fmt.Fprintln(p.w, line))
		}
	}
	return nil
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} and the available
// choices when the error carries them.
// For human mode, outputs "Error: <message>" followed by the choices list.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.w, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
	if len(exitErr.Choices) > 0 {
		p.list(p.w, "Available templates:", exitErr.Choices)
	}
}

// List prints a titled bullet list, preceded by a blank line.
func (p *Printer) List(title string, items []string) {
	p.list(p.w, title, items)
}

func (p *Printer) list(w io.Writer, title string, items []string) {
	mustWrite(fmt.Fprintln(w))
	mustWrite(fmt.Fprintln(w, p.styles.Bold.Render(title)))
	for _, item := range items {
		mustWrite(fmt.Fprintf(w, "  - %s\n", item))
	}
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes any data as JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N, "available": [...]}
func ErrorJSON(exitErr *ExitError) []byte {
	data := map[string]any{
		"error": exitErr.Message,
		"code":  exitErr.Code,
	}
	if len(exitErr.Choices) > 0 {
		data["available"] = exitErr.Choices
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write to the terminal or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table renders a simple table with column alignment.
// Headers are rendered in Bold style. Column widths are auto-calculated.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := calcColumnWidths(headers, rows)
	p.printRow(headers, widths, p.styles.Bold)
	for _, row := range rows {
		p.printRow(row, widths, lipgloss.NewStyle())
	}
}

// calcColumnWidths computes the max width for each column.
func calcColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func (p *Printer) printRow(cells []string, widths []int, style lipgloss.Style) {
	parts := make([]string, 0, len(widths))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		parts = append(parts, style.Render(padRight(cell, widths[i])))
	}
	mustWrite(fmt.Fprintln(p.w, strings.TrimRight(strings.Join(parts, "  "), " ")))
}

// padRight pads a string with spaces to reach the target width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
