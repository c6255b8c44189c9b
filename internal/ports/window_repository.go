package ports

import (
	"context"

	"github.com/bnema/openwin/internal/domain"
)

type WindowRepository interface {
	GetByID(ctx context.Context, id domain.WindowID) (domain.WindowRecord, error)
	List(ctx context.Context) ([]domain.WindowRecord, error)
	Save(ctx context.Context, window domain.WindowRecord) error
	Delete(ctx context.Context, id domain.WindowID) error
}
