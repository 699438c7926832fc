package documents_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/typemitr/typemitr/internal/documents"
)

func strptr(s string) *string { return &s }

func TestFinalContent(t *testing.T) {
	t.Run("no edits returns generated", func(t *testing.T) {
		doc := documents.Document{GeneratedContent: "generated text"}
		if got := doc.FinalContent(); got != "generated text" {
			t.Errorf("FinalContent() = %q", got)
		}
	})

	t.Run("empty edit returns generated", func(t *testing.T) {
		doc := documents.Document{
			GeneratedContent: "generated text",
			EditedContent:    strptr(""),
		}
		if got := doc.FinalContent(); got != "generated text" {
			t.Errorf("FinalContent() = %q", got)
		}
	})

	t.Run("edit wins over generated", func(t *testing.T) {
		doc := documents.Document{
			GeneratedContent: "generated text",
			EditedContent:    strptr("edited text"),
		}
		if got := doc.FinalContent(); got != "edited text" {
			t.Errorf("FinalContent() = %q", got)
		}
	})
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{})
		if f.DocumentType != nil || f.Category != nil || f.Language != nil || f.Tone != nil || f.IsDemo != nil {
			t.Errorf("filters = %+v, want all nil", f)
		}
	})

	t.Run("all fields", func(t *testing.T) {
		values := url.Values{
			"document_type": {"Job Application"},
			"category":      {"corporate"},
			"language":      {"hindi"},
			"tone":          {"formal"},
			"is_demo":       {"true"},
		}

		f := documents.FiltersFromQuery(values)
		if f.DocumentType == nil || *f.DocumentType != "Job Application" {
			t.Errorf("DocumentType = %v", f.DocumentType)
		}
		if f.Category == nil || *f.Category != "corporate" {
			t.Errorf("Category = %v", f.Category)
		}
		if f.Language == nil || *f.Language != "hindi" {
			t.Errorf("Language = %v", f.Language)
		}
		if f.Tone == nil || *f.Tone != "formal" {
			t.Errorf("Tone = %v", f.Tone)
		}
		if f.IsDemo == nil || *f.IsDemo != true {
			t.Errorf("IsDemo = %v", f.IsDemo)
		}
	})

	t.Run("malformed is_demo ignored", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{"is_demo": {"maybe"}})
		if f.IsDemo != nil {
			t.Errorf("IsDemo = %v, want nil", f.IsDemo)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", documents.ErrNotFound, http.StatusNotFound},
		{"duplicate", documents.ErrDuplicate, http.StatusConflict},
		{"invalid id", documents.ErrInvalidID, http.StatusBadRequest},
		{"empty content", documents.ErrEmptyContent, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := documents.MapHTTPStatus(tc.err); got != tc.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
