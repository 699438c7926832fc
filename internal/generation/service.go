package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/typemitr/typemitr/internal/documents"
)

// System defines the public contract for the generation pipeline.
type System interface {
	Handler(maxRequestSize int64) *Handler

	Generate(ctx context.Context, session uuid.UUID, cmd GenerateCommand) (*documents.Document, error)
	Recent(session uuid.UUID) (*Draft, error)
}

type service struct {
	client Client
	store  documents.System
	cache  *DraftCache
	logger *slog.Logger
}

// New creates the generation service over the given client, document store,
// and draft cache.
func New(client Client, store documents.System, cache *DraftCache, logger *slog.Logger) System {
	return &service{
		client: client,
		store:  store,
		cache:  cache,
		logger: logger.With("system", "generation"),
	}
}

func (s *service) Handler(maxRequestSize int64) *Handler {
	return NewHandler(s, s.logger, maxRequestSize)
}

// Generate runs the full pipeline: normalize, synthesize, call the upstream
// model, shape, persist, and cache the resulting draft for the session. The
// service holds no state between invocations; a failed call leaves no
// partial records behind.
func (s *service) Generate(ctx context.Context, session uuid.UUID, cmd GenerateCommand) (*documents.Document, error) {
	req, err := Normalize(cmd)
	if err != nil {
		return nil, err
	}

	prompt := Synthesize(req)

	content, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Create(ctx, Shape(req, content))
	if err != nil {
		return nil, err
	}

	s.cache.Put(session, Draft{
		DocumentID:    doc.ID,
		DocumentType:  doc.DocumentType,
		SenderName:    doc.SenderName,
		RecipientName: doc.RecipientName,
		Content:       doc.FinalContent(),
		GeneratedAt:   time.Now(),
	})

	s.logger.Info("document generated",
		"id", doc.ID,
		"type", doc.DocumentType,
		"language", doc.Language,
		"demo", doc.IsDemo,
	)

	return doc, nil
}

// Recent returns the session's cached draft, if one exists and has not expired.
func (s *service) Recent(session uuid.UUID) (*Draft, error) {
	draft, ok := s.cache.Get(session)
	if !ok {
		return nil, ErrNoDraft
	}
	return &draft, nil
}
