package http

import (
	"net/http"

	commonhttp "github.com/LEEEUNCHEOL96/sbb-board/internal/common/http"
)

type ViewData map[string]any

// Renderer is the view-rendering collaborator: it receives a view name plus
// named attributes and produces the response body. Template rendering itself
// lives outside the board core.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view string, data ViewData)
}

// JSONRenderer ships the view name and its attributes as JSON. It stands in
// for a server-side template engine and keeps handler output testable.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(w http.ResponseWriter, status int, view string, data ViewData) {
	commonhttp.WriteJSON(w, status, map[string]any{
		"view": view,
		"data": data,
	})
}
