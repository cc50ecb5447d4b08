package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/expoui/internal/emit"
	"github.com/gorewood/expoui/internal/output"
	"github.com/gorewood/expoui/internal/snippet"
)

// TemplateInfo describes one registered template.
type TemplateInfo struct {
	Name        string `json:"name"        jsonschema:"template identifier"`
	Description string `json:"description" jsonschema:"one-line description"`
	File        string `json:"file"        jsonschema:"output file name"`
}

// --- list_templates ---

// ListInput is the input for the list_templates tool (no parameters needed).
type ListInput struct{}

// ListOutput is the output for the list_templates tool.
type ListOutput struct {
	Templates []TemplateInfo `json:"templates" jsonschema:"available templates in display order"`
}

func handleList(emitter *emit.Emitter) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		templates := emitter.Registry().Templates()
		out := ListOutput{Templates: make([]TemplateInfo, 0, len(templates))}
		for _, tmpl := range templates {
			out.Templates = append(out.Templates, TemplateInfo{
				Name:        tmpl.Name,
				Description: tmpl.Description,
				File:        snippet.FileName(tmpl.Name),
			})
		}
		return nil, out, nil
	}
}

// --- show_template ---

// ShowInput is the input for the show_template tool.
type ShowInput struct {
	Name string `json:"name" jsonschema:"template identifier (case-insensitive)"`
}

// ShowOutput is the output for the show_template tool.
type ShowOutput struct {
	Name    string `json:"name"    jsonschema:"template identifier"`
	File    string `json:"file"    jsonschema:"file name the template is written to"`
	Content string `json:"content" jsonschema:"template source"`
}

func handleShow(emitter *emit.Emitter) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		tmpl, err := emitter.Resolve(input.Name)
		if err != nil {
			return nil, ShowOutput{}, toolError(err)
		}
		return nil, ShowOutput{
			Name:    tmpl.Name,
			File:    snippet.FileName(tmpl.Name),
			Content: tmpl.Body,
		}, nil
	}
}

// --- generate_template ---

// GenerateInput is the input for the generate_template tool.
type GenerateInput struct {
	Name string `json:"name" jsonschema:"template identifier (case-insensitive)"`
}

// GenerateOutput is the output for the generate_template tool.
type GenerateOutput struct {
	Template string `json:"template" jsonschema:"template identifier"`
	File     string `json:"file"     jsonschema:"output file name"`
	Path     string `json:"path"     jsonschema:"path the file was written to"`
	Bytes    int    `json:"bytes"    jsonschema:"number of bytes written"`
}

func handleGenerate(emitter *emit.Emitter) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := emitter.Emit(ctx, input.Name)
		if err != nil {
			return nil, GenerateOutput{}, toolError(err)
		}
		return nil, GenerateOutput{
			Template: result.Name,
			File:     result.File,
			Path:     result.Path,
			Bytes:    result.Bytes,
		}, nil
	}
}

// toolError flattens an emit error into a single message, appending the
// valid template names when the error carries them.
func toolError(err error) error {
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || len(exitErr.Choices) == 0 {
		return err
	}
	return fmt.Errorf("%s (available: %s)", exitErr.Message, strings.Join(exitErr.Choices, ", "))
}
