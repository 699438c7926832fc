package generation_test

import (
	"errors"
	"testing"

	"github.com/typemitr/typemitr/internal/catalog"
	"github.com/typemitr/typemitr/internal/generation"
)

func validCommand() generation.GenerateCommand {
	return generation.GenerateCommand{
		DocumentType:  "Job Application",
		Language:      "english",
		Tone:          "formal",
		SenderName:    "Priya Sharma",
		RecipientName: "HR Manager",
		Purpose:       "Application for software engineer position",
	}
}

func assertFieldErrors(t *testing.T, err error, fields ...string) {
	t.Helper()

	var verr *generation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}

	got := verr.Fields()
	for _, field := range fields {
		if _, ok := got[field]; !ok {
			t.Errorf("missing field error for %q in %v", field, got)
		}
	}
	if len(got) != len(fields) {
		t.Errorf("field errors = %v, want exactly %v", got, fields)
	}
}

func TestNormalize(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		req, err := generation.Normalize(validCommand())
		if err != nil {
			t.Fatalf("Normalize error: %v", err)
		}

		if req.Type.Key != "Job Application" {
			t.Errorf("Type.Key = %q", req.Type.Key)
		}
		if req.Type.Category != "corporate" {
			t.Errorf("Type.Category = %q", req.Type.Category)
		}
		if req.Reason != nil || req.DateFrom != nil || req.DateTo != nil {
			t.Error("optional fields should be nil when absent")
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		cmd := validCommand()
		cmd.SenderName = "  Priya Sharma  "
		cmd.Purpose = "\tApplication\n"

		req, err := generation.Normalize(cmd)
		if err != nil {
			t.Fatalf("Normalize error: %v", err)
		}
		if req.SenderName != "Priya Sharma" {
			t.Errorf("SenderName = %q", req.SenderName)
		}
		if req.Purpose != "Application" {
			t.Errorf("Purpose = %q", req.Purpose)
		}
	})

	t.Run("collects all missing required fields", func(t *testing.T) {
		_, err := generation.Normalize(generation.GenerateCommand{})
		assertFieldErrors(t, err, "document_type", "sender_name", "recipient_name", "purpose")
	})

	t.Run("whitespace-only counts as missing", func(t *testing.T) {
		cmd := validCommand()
		cmd.SenderName = "   "
		cmd.RecipientName = "\t"

		_, err := generation.Normalize(cmd)
		assertFieldErrors(t, err, "sender_name", "recipient_name")
	})

	t.Run("required subsets", func(t *testing.T) {
		cases := []struct {
			name  string
			mod   func(*generation.GenerateCommand)
			field string
		}{
			{"missing type", func(c *generation.GenerateCommand) { c.DocumentType = "" }, "document_type"},
			{"missing sender", func(c *generation.GenerateCommand) { c.SenderName = "" }, "sender_name"},
			{"missing recipient", func(c *generation.GenerateCommand) { c.RecipientName = "" }, "recipient_name"},
			{"missing purpose", func(c *generation.GenerateCommand) { c.Purpose = "" }, "purpose"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmd := validCommand()
				tc.mod(&cmd)
				_, err := generation.Normalize(cmd)
				assertFieldErrors(t, err, tc.field)
			})
		}
	})

	t.Run("unknown document type", func(t *testing.T) {
		cmd := validCommand()
		cmd.DocumentType = "Ransom Note"

		_, err := generation.Normalize(cmd)
		assertFieldErrors(t, err, "document_type")
	})

	t.Run("unknown language rejected", func(t *testing.T) {
		cmd := validCommand()
		cmd.Language = "klingon"

		_, err := generation.Normalize(cmd)
		assertFieldErrors(t, err, "language")
	})

	t.Run("unknown tone rejected", func(t *testing.T) {
		cmd := validCommand()
		cmd.Tone = "sarcastic"

		_, err := generation.Normalize(cmd)
		assertFieldErrors(t, err, "tone")
	})

	t.Run("absent language and tone default", func(t *testing.T) {
		cmd := validCommand()
		cmd.Language = ""
		cmd.Tone = ""

		req, err := generation.Normalize(cmd)
		if err != nil {
			t.Fatalf("Normalize error: %v", err)
		}
		if req.Language != catalog.DefaultLanguage {
			t.Errorf("Language = %q", req.Language)
		}
		if req.Tone != catalog.DefaultTone {
			t.Errorf("Tone = %q", req.Tone)
		}
	})

	t.Run("valid dates", func(t *testing.T) {
		cmd := validCommand()
		cmd.DateFrom = "2025-01-15"
		cmd.DateTo = "2025-01-30"

		req, err := generation.Normalize(cmd)
		if err != nil {
			t.Fatalf("Normalize error: %v", err)
		}
		if req.DateFrom == nil || req.DateFrom.Format(generation.DateLayout) != "2025-01-15" {
			t.Errorf("DateFrom = %v", req.DateFrom)
		}
		if req.DateTo == nil || req.DateTo.Format(generation.DateLayout) != "2025-01-30" {
			t.Errorf("DateTo = %v", req.DateTo)
		}
	})

	t.Run("malformed dates", func(t *testing.T) {
		cmd := validCommand()
		cmd.DateFrom = "15/01/2025"
		cmd.DateTo = "someday"

		_, err := generation.Normalize(cmd)
		assertFieldErrors(t, err, "date_from", "date_to")
	})

	t.Run("reversed dates allowed", func(t *testing.T) {
		cmd := validCommand()
		cmd.DateFrom = "2025-06-30"
		cmd.DateTo = "2025-06-01"

		if _, err := generation.Normalize(cmd); err != nil {
			t.Fatalf("Normalize error: %v", err)
		}
	})

	t.Run("validation mixes required and format errors", func(t *testing.T) {
		cmd := validCommand()
		cmd.Purpose = ""
		cmd.Language = "latin"
		cmd.DateFrom = "bad"

		_, err := generation.Normalize(cmd)
		assertFieldErrors(t, err, "purpose", "language", "date_from")
	})
}
