package repository

import (
	"context"

	"corruptx/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error)
	UpdateRole(ctx context.Context, id, role string) error
	Update(ctx context.Context, profile *entity.Profile) error
}
