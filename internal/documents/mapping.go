package documents

import (
	"net/url"
	"strconv"

	"github.com/typemitr/typemitr/pkg/query"
	"github.com/typemitr/typemitr/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "generated_documents", "g").
	Project("id", "ID").
	Project("document_type", "DocumentType").
	Project("category", "Category").
	Project("language", "Language").
	Project("tone", "Tone").
	Project("sender_name", "SenderName").
	Project("recipient_name", "RecipientName").
	Project("purpose", "Purpose").
	Project("reason", "Reason").
	Project("date_range", "DateRange").
	Project("additional_details", "AdditionalDetails").
	Project("generated_content", "GeneratedContent").
	Project("edited_content", "EditedContent").
	Project("is_demo", "IsDemo").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored; all filters use exact matching.
type Filters struct {
	DocumentType *string `json:"document_type,omitempty"`
	Category     *string `json:"category,omitempty"`
	Language     *string `json:"language,omitempty"`
	Tone         *string `json:"tone,omitempty"`
	IsDemo       *bool   `json:"is_demo,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("DocumentType", f.DocumentType).
		WhereEquals("Category", f.Category).
		WhereEquals("Language", f.Language).
		WhereEquals("Tone", f.Tone).
		WhereEquals("IsDemo", f.IsDemo)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if dt := values.Get("document_type"); dt != "" {
		f.DocumentType = &dt
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if l := values.Get("language"); l != "" {
		f.Language = &l
	}

	if t := values.Get("tone"); t != "" {
		f.Tone = &t
	}

	if d := values.Get("is_demo"); d != "" {
		if v, err := strconv.ParseBool(d); err == nil {
			f.IsDemo = &v
		}
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.DocumentType,
		&d.Category,
		&d.Language,
		&d.Tone,
		&d.SenderName,
		&d.RecipientName,
		&d.Purpose,
		&d.Reason,
		&d.DateRange,
		&d.AdditionalDetails,
		&d.GeneratedContent,
		&d.EditedContent,
		&d.IsDemo,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func scanStats(s repository.Scanner) (TypeStats, error) {
	var ts TypeStats
	err := s.Scan(
		&ts.DocumentType,
		&ts.Category,
		&ts.Language,
		&ts.GenerationCount,
		&ts.LastGenerated,
	)
	return ts, err
}
