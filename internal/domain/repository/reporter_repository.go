package repository

import (
	"context"

	"corruptx/internal/domain/entity"
)

type ReporterRepository interface {
	Create(ctx context.Context, reporter *entity.Reporter) error
	GetByID(ctx context.Context, id string) (*entity.Reporter, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Reporter, error)
	List(ctx context.Context) ([]*entity.Reporter, error)
	Update(ctx context.Context, reporter *entity.Reporter) error
}
