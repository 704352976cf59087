package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/errors"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		doc := r.client.Collection("uploads").NewDoc()
		report.ID = doc.ID
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("uploads").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection("uploads").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("uploads").Query

	if filter.CampaignID != "" {
		query = query.Where("campaignId", "==", filter.CampaignID)
	}
	if filter.CorruptionType != "" {
		query = query.Where("corruptionType", "==", filter.CorruptionType)
	}
	if filter.IsAnonymous != nil {
		query = query.Where("isAnonymous", "==", *filter.IsAnonymous)
	}
	if filter.CampaignPending != nil {
		query = query.Where("campaignPending", "==", *filter.CampaignPending)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("createdAt", ">=", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("createdAt", "<=", *filter.CreatedTo)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count reports", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var reports []*entity.Report

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate reports", err)
		}
		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, 0, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, total, nil
}

func (r *firestoreReportRepository) ListByCampaignRequest(ctx context.Context, requestID string) ([]*entity.Report, error) {
	iter := r.client.Collection("uploads").
		Where("campaignRequestId", "==", requestID).
		Documents(ctx)

	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reports for campaign request", err)
		}
		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, nil
}

func (r *firestoreReportRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("uploads").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count user reports", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate user reports", err)
		}
		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, 0, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, total, nil
}

func (r *firestoreReportRepository) Update(ctx context.Context, report *entity.Report) error {
	_, err := r.client.Collection("uploads").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to update report", err)
	}

	return nil
}

func (r *firestoreReportRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("uploads").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete report", err)
	}

	return nil
}
