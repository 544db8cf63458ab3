package httpmetrics

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", "/"},
		{"root", "/", "/"},
		{"static", "/question/list", "/question/list"},
		{"detail id", "/question/detail/42", "/question/detail/{id}"},
		{"vote id", "/question/vote/7", "/question/vote/{id}"},
		{"answer id", "/answer/create/123", "/answer/create/{id}"},
		{"mixed segment", "/question/detail/abc42", "/question/detail/abc42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
