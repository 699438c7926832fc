package catalog

import "errors"

var (
	// ErrUnknownType indicates a document type key not present in the catalog.
	ErrUnknownType = errors.New("unknown document type")
	// ErrUnknownCategory indicates a category key not present in the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownLanguage indicates an unsupported language key.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrUnknownTone indicates an unsupported tone key.
	ErrUnknownTone = errors.New("unknown tone")
)
