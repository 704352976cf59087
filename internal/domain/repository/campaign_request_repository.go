package repository

import (
	"context"

	"corruptx/internal/domain/entity"
)

type CampaignRequestRepository interface {
	Create(ctx context.Context, request *entity.CampaignRequest) error
	GetByID(ctx context.Context, id string) (*entity.CampaignRequest, error)
	List(ctx context.Context) ([]*entity.CampaignRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
