package documents

import (
	"context"

	"github.com/typemitr/typemitr/pkg/pagination"
)

// System defines the public contract for generated document operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id int64) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	UpdateContent(ctx context.Context, id int64, content string) (*Document, error)
	Stats(ctx context.Context) ([]TypeStats, error)
}
