package decisions

import (
	"context"

	"github.com/JaimeStill/arbiter/pkg/pagination"
)

// System defines the public contract for decision domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Decision], error)

	Find(ctx context.Context, id int64) (*Decision, error)
	Recent(ctx context.Context, limit int) ([]Decision, error)
	Evaluate(ctx context.Context, cmd EvaluateCommand) (*Decision, error)
	Dispose(ctx context.Context, id int64, cmd DisposeCommand) (*Decision, error)
	Dispositions(ctx context.Context, id int64) ([]Disposition, error)
}
