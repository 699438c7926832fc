package generation

import (
	"fmt"
	"strings"

	"github.com/typemitr/typemitr/internal/documents"
)

// DateRange renders the request's date window as a display literal:
// "{from} to {to}" when both bounds are present, "From {from}" or
// "Until {to}" for a single bound, nil when neither is set.
func DateRange(req Request) *string {
	var s string

	switch {
	case req.DateFrom != nil && req.DateTo != nil:
		s = fmt.Sprintf("%s to %s", req.DateFrom.Format(DateLayout), req.DateTo.Format(DateLayout))
	case req.DateFrom != nil:
		s = fmt.Sprintf("From %s", req.DateFrom.Format(DateLayout))
	case req.DateTo != nil:
		s = fmt.Sprintf("Until %s", req.DateTo.Format(DateLayout))
	default:
		return nil
	}

	return &s
}

// IsDemo reports whether the generated text looks like placeholder output.
// The check is a case-insensitive substring match for "demo" or "sample",
// which makes it deliberately coarse: legitimate documents mentioning either
// word are flagged too.
func IsDemo(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "demo") || strings.Contains(lower, "sample")
}

// Shape converts a normalized request and its generated text into a
// persistence command. It is total: any text for any valid request yields
// a command.
func Shape(req Request, content string) documents.CreateCommand {
	return documents.CreateCommand{
		DocumentType:      req.Type.Key,
		Category:          req.Type.Category,
		Language:          req.Language,
		Tone:              req.Tone,
		SenderName:        req.SenderName,
		RecipientName:     req.RecipientName,
		Purpose:           req.Purpose,
		Reason:            req.Reason,
		DateRange:         DateRange(req),
		AdditionalDetails: req.AdditionalDetails,
		GeneratedContent:  content,
		IsDemo:            IsDemo(content),
	}
}
