package ports

import "go.trai.ch/webbundle/internal/core/domain"

// Renderer renders the entry-point template.
type Renderer interface {
	// Render executes the template text against rc. The base URL is escaped
	// as usual, while the javascript and stylesheet fragments are injected
	// as raw markup.
	Render(text string, rc domain.RenderContext) (string, error)
}
