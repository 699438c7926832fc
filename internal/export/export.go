package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/typemitr/typemitr/internal/documents"
	"github.com/typemitr/typemitr/pkg/storage"
)

// Export holds a rendered PDF ready for download.
type Export struct {
	Filename  string
	Data      []byte
	PageCount int
}

// System defines the public contract for document export.
type System interface {
	Handler() *Handler
	Export(ctx context.Context, id int64) (*Export, error)
}

type service struct {
	store    documents.System
	renderer Renderer
	archive  storage.System
	logger   *slog.Logger
}

// New creates the export service. When the archive storage system is
// enabled, every rendered PDF is also uploaded under exports/{id}/.
func New(store documents.System, renderer Renderer, archive storage.System, logger *slog.Logger) System {
	return &service{
		store:    store,
		renderer: renderer,
		archive:  archive,
		logger:   logger.With("system", "export"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Export fetches the document, renders its final content as a PDF, and
// verifies the result parses. Archival failures are logged but never fail
// the export.
func (s *service) Export(ctx context.Context, id int64) (*Export, error) {
	doc, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(Letter{
		Title:     doc.DocumentType,
		Sender:    doc.SenderName,
		Recipient: doc.RecipientName,
		Body:      doc.FinalContent(),
	})
	if err != nil {
		return nil, err
	}

	pageCount, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		s.logger.Warn("rendered pdf failed page count check", "id", id, "error", err)
		pageCount = 0
	}

	exp := &Export{
		Filename:  buildFilename(doc),
		Data:      data,
		PageCount: pageCount,
	}

	if s.archive.Enabled() {
		key := fmt.Sprintf("exports/%d/%s", doc.ID, exp.Filename)
		if err := s.archive.Upload(ctx, key, bytes.NewReader(data), "application/pdf"); err != nil {
			s.logger.Warn("pdf archive upload failed", "key", key, "error", err)
		}
	}

	s.logger.Info("document exported", "id", id, "pages", pageCount, "bytes", len(data))
	return exp, nil
}

func buildFilename(doc *documents.Document) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(doc.DocumentType)
	return fmt.Sprintf("%s_%d.pdf", name, doc.ID)
}
