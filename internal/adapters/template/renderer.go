// Package template renders the entry-point document.
package template

import (
	"bytes"
	"html/template"

	"go.trai.ch/webbundle/internal/core/domain"
	"go.trai.ch/webbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer using html/template.
//
// The entry template references three variables: {{.base_url}},
// {{.javascript}} and {{.stylesheet}}. The base URL is escaped like any
// template value; the two markup fragments are typed template.HTML, which
// is html/template's marker for "render raw, do not escape".
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ ports.Renderer = (*Renderer)(nil)

// Render executes the template text against rc.
func (r *Renderer) Render(text string, rc domain.RenderContext) (string, error) {
	tpl, err := template.New("index").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", zerr.Wrap(err, "failed to parse the entry template")
	}

	data := map[string]any{
		"base_url":   rc.BaseURL,
		"javascript": template.HTML(rc.Javascript), //nolint:gosec // raw by contract
		"stylesheet": template.HTML(rc.Stylesheet), //nolint:gosec // raw by contract
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", zerr.Wrap(err, "failed to render the entry template")
	}
	return buf.String(), nil
}
