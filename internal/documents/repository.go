package documents

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/typemitr/typemitr/pkg/pagination"
	"github.com/typemitr/typemitr/pkg/query"
	"github.com/typemitr/typemitr/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "SenderName", "RecipientName", "Purpose")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

const insertDocument = `
	INSERT INTO generated_documents(
		document_type, category, language, tone,
		sender_name, recipient_name, purpose, reason,
		date_range, additional_details, generated_content, is_demo)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id, document_type, category, language, tone,
		sender_name, recipient_name, purpose, reason,
		date_range, additional_details, generated_content,
		edited_content, is_demo, created_at, updated_at`

const upsertStats = `
	INSERT INTO document_stats(document_type, category, language, generation_count, last_generated)
	VALUES ($1, $2, $3, 1, now())
	ON CONFLICT (document_type, language)
	DO UPDATE SET
		generation_count = document_stats.generation_count + 1,
		last_generated = now()`

// Create inserts the generated document and bumps the per-type generation
// counter in a single transaction.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	insertArgs := []any{
		cmd.DocumentType,
		cmd.Category,
		cmd.Language,
		cmd.Tone,
		cmd.SenderName,
		cmd.RecipientName,
		cmd.Purpose,
		cmd.Reason,
		cmd.DateRange,
		cmd.AdditionalDetails,
		cmd.GeneratedContent,
		cmd.IsDemo,
	}

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		doc, err := repository.QueryOne(ctx, tx, insertDocument, insertArgs, scanDocument)
		if err != nil {
			return Document{}, err
		}

		if _, err := tx.ExecContext(
			ctx, upsertStats,
			cmd.DocumentType, cmd.Category, cmd.Language,
		); err != nil {
			return Document{}, fmt.Errorf("record generation stats: %w", err)
		}

		return doc, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document created", "id", d.ID, "type", d.DocumentType, "language", d.Language)
	return &d, nil
}

const updateContent = `
	UPDATE generated_documents
	SET edited_content = $2, updated_at = now()
	WHERE id = $1
	RETURNING id, document_type, category, language, tone,
		sender_name, recipient_name, purpose, reason,
		date_range, additional_details, generated_content,
		edited_content, is_demo, created_at, updated_at`

func (r *repo) UpdateContent(ctx context.Context, id int64, content string) (*Document, error) {
	d, err := repository.QueryOne(ctx, r.db, updateContent, []any{id, content}, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document content updated", "id", d.ID)
	return &d, nil
}

const selectStats = `
	SELECT document_type, category, language, generation_count, last_generated
	FROM document_stats
	ORDER BY generation_count DESC, last_generated DESC`

func (r *repo) Stats(ctx context.Context) ([]TypeStats, error) {
	stats, err := repository.QueryMany(ctx, r.db, selectStats, nil, scanStats)
	if err != nil {
		return nil, fmt.Errorf("query document stats: %w", err)
	}
	return stats, nil
}
