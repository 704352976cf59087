package repository

import (
	"context"
	"time"

	"corruptx/internal/domain/entity"
)

// ReportFilter narrows admin and heatmap report queries. Zero values mean
// "no constraint"; the *bool fields distinguish unset from false.
type ReportFilter struct {
	CampaignID      string
	CorruptionType  string
	IsAnonymous     *bool
	CampaignPending *bool
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	List(ctx context.Context, filter ReportFilter, limit, offset int) ([]*entity.Report, int64, error)
	ListByCampaignRequest(ctx context.Context, requestID string) ([]*entity.Report, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error)
	Update(ctx context.Context, report *entity.Report) error
	Delete(ctx context.Context, id string) error
}
