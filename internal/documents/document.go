// Package documents implements the generated document domain. It provides
// types, data access, and business logic for persisting generated documents,
// retrieving and searching them, recording human edits, and tracking
// per-type generation statistics.
package documents

import (
	"time"

	"github.com/typemitr/typemitr/internal/catalog"
)

// Document represents a persisted generated document. GeneratedContent is
// the model output as produced at generation time and is never mutated;
// human revisions are stored separately in EditedContent.
type Document struct {
	ID                int64            `json:"id"`
	DocumentType      string           `json:"document_type"`
	Category          string           `json:"category"`
	Language          catalog.Language `json:"language"`
	Tone              catalog.Tone     `json:"tone"`
	SenderName        string           `json:"sender_name"`
	RecipientName     string           `json:"recipient_name"`
	Purpose           string           `json:"purpose"`
	Reason            *string          `json:"reason"`
	DateRange         *string          `json:"date_range"`
	AdditionalDetails *string          `json:"additional_details"`
	GeneratedContent  string           `json:"generated_content"`
	EditedContent     *string          `json:"edited_content"`
	IsDemo            bool             `json:"is_demo"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// FinalContent returns the edited content when a non-empty edit exists,
// otherwise the original generated content. Consumers that render or export
// a document must go through this accessor.
func (d *Document) FinalContent() string {
	if d.EditedContent != nil && *d.EditedContent != "" {
		return *d.EditedContent
	}
	return d.GeneratedContent
}

// CreateCommand carries the data needed to persist a newly generated
// document. Nil optional fields are stored as NULL.
type CreateCommand struct {
	DocumentType      string
	Category          string
	Language          catalog.Language
	Tone              catalog.Tone
	SenderName        string
	RecipientName     string
	Purpose           string
	Reason            *string
	DateRange         *string
	AdditionalDetails *string
	GeneratedContent  string
	IsDemo            bool
}

// TypeStats reports cumulative generation activity for a
// (document type, language) pair.
type TypeStats struct {
	DocumentType    string           `json:"document_type"`
	Category        string           `json:"category"`
	Language        catalog.Language `json:"language"`
	GenerationCount int              `json:"generation_count"`
	LastGenerated   time.Time        `json:"last_generated"`
}
