package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/daydemir/eventato/internal/types"
)

//go:embed templates/*.md
var embeddedPrompts embed.FS

// AddEvents is the template used to instruct the coding agent
const AddEvents = "add_events"

// Get returns the raw template content by name
func Get(name string) (string, error) {
	// Normalize name
	if !strings.HasSuffix(name, ".md") {
		name = name + ".md"
	}

	content, err := embeddedPrompts.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("prompt %s not found: %w", name, err)
	}
	return string(content), nil
}

type addEventsData struct {
	Request types.EventRequest
	Setup   types.SetupDescriptor
	Files   []string
}

// Compose renders the agent instruction. Identical inputs produce identical output.
func Compose(req types.EventRequest, setup types.SetupDescriptor, files []string) (string, error) {
	if !setup.Flavor.IsValid() {
		return "", fmt.Errorf("unsupported setup flavor %q", setup.Flavor)
	}

	raw, err := Get(AddEvents)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(AddEvents).
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %w", err)
	}

	var buf bytes.Buffer
	data := addEventsData{Request: req, Setup: setup, Files: files}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
