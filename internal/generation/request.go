// Package generation implements the document generation pipeline: request
// normalization, deterministic prompt synthesis, the upstream model call,
// and shaping of the raw output into a persistable document.
package generation

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/typemitr/typemitr/internal/catalog"
)

// DateLayout is the wire format for request dates.
const DateLayout = "2006-01-02"

// GenerateCommand is the raw JSON body accepted by the generate endpoint.
// String fields arrive untrimmed; Normalize produces the validated Request.
type GenerateCommand struct {
	DocumentType      string `json:"document_type"`
	Language          string `json:"language"`
	Tone              string `json:"tone"`
	SenderName        string `json:"sender_name"`
	RecipientName     string `json:"recipient_name"`
	Purpose           string `json:"purpose"`
	Reason            string `json:"reason"`
	AdditionalDetails string `json:"additional_details"`
	DateFrom          string `json:"date_from"`
	DateTo            string `json:"date_to"`
}

// Request is a fully validated generation request. Type is resolved against
// the catalog; language and tone hold their defaults when the command left
// them unspecified.
type Request struct {
	Type              catalog.TypeDescriptor
	Language          catalog.Language
	Tone              catalog.Tone
	SenderName        string
	RecipientName     string
	Purpose           string
	Reason            *string
	AdditionalDetails *string
	DateFrom          *time.Time
	DateTo            *time.Time
}

// Normalize validates and canonicalizes a command into a Request. All field
// problems are collected into a single ValidationError; no partial results
// are returned. Date ordering is deliberately not enforced.
func Normalize(cmd GenerateCommand) (Request, error) {
	errs := validation.Errors{
		"document_type":  validation.Validate(strings.TrimSpace(cmd.DocumentType), validation.Required),
		"sender_name":    validation.Validate(strings.TrimSpace(cmd.SenderName), validation.Required),
		"recipient_name": validation.Validate(strings.TrimSpace(cmd.RecipientName), validation.Required),
		"purpose":        validation.Validate(strings.TrimSpace(cmd.Purpose), validation.Required),
	}

	var req Request

	docType := strings.TrimSpace(cmd.DocumentType)
	if docType != "" {
		if desc, ok := catalog.Lookup(docType); ok {
			req.Type = *desc
		} else {
			errs["document_type"] = catalog.ErrUnknownType
		}
	}

	lang, err := catalog.ParseLanguage(strings.TrimSpace(cmd.Language))
	if err != nil {
		errs["language"] = err
	} else {
		req.Language = lang
	}

	tone, err := catalog.ParseTone(strings.TrimSpace(cmd.Tone))
	if err != nil {
		errs["tone"] = err
	} else {
		req.Tone = tone
	}

	req.SenderName = strings.TrimSpace(cmd.SenderName)
	req.RecipientName = strings.TrimSpace(cmd.RecipientName)
	req.Purpose = strings.TrimSpace(cmd.Purpose)
	req.Reason = optional(cmd.Reason)
	req.AdditionalDetails = optional(cmd.AdditionalDetails)

	if from, err := parseDate(cmd.DateFrom); err != nil {
		errs["date_from"] = err
	} else {
		req.DateFrom = from
	}

	if to, err := parseDate(cmd.DateTo); err != nil {
		errs["date_to"] = err
	} else {
		req.DateTo = to
	}

	if err := errs.Filter(); err != nil {
		return Request{}, &ValidationError{Errors: err.(validation.Errors)}
	}

	return req, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, validation.NewError("validation_date", "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}
