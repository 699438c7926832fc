package api

import (
	"github.com/typemitr/typemitr/internal/documents"
	"github.com/typemitr/typemitr/internal/export"
	"github.com/typemitr/typemitr/internal/generation"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents  documents.System
	Generation generation.System
	Export     export.System
	Drafts     *generation.DraftCache
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	client := generation.NewClient(&runtime.Generator, runtime.Logger)

	drafts := generation.NewDraftCache(
		runtime.Generator.SessionTTLDuration(),
		runtime.Logger,
	)

	generationSystem := generation.New(client, docsSystem, drafts, runtime.Logger)

	exportSystem := export.New(
		docsSystem,
		export.NewRenderer(),
		runtime.Storage,
		runtime.Logger,
	)

	return &Domain{
		Documents:  docsSystem,
		Generation: generationSystem,
		Export:     exportSystem,
		Drafts:     drafts,
	}
}
