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

type firestoreReporterRepository struct {
	client *firestore.Client
}

func NewFirestoreReporterRepository(client *firestore.Client) repository.ReporterRepository {
	return &firestoreReporterRepository{
		client: client,
	}
}

func (r *firestoreReporterRepository) Create(ctx context.Context, reporter *entity.Reporter) error {
	if reporter.ID == "" {
		doc := r.client.Collection("reporters").NewDoc()
		reporter.ID = doc.ID
	}

	if reporter.CreatedAt.IsZero() {
		reporter.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("reporters").Doc(reporter.ID).Set(ctx, reporter)
	if err != nil {
		return errors.Internal("Failed to create reporter", err)
	}

	return nil
}

func (r *firestoreReporterRepository) GetByID(ctx context.Context, id string) (*entity.Reporter, error) {
	doc, err := r.client.Collection("reporters").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Reporter", err)
		}
		return nil, errors.Internal("Failed to get reporter", err)
	}

	var reporter entity.Reporter
	if err := doc.DataTo(&reporter); err != nil {
		return nil, errors.Internal("Failed to parse reporter data", err)
	}

	return &reporter, nil
}

func (r *firestoreReporterRepository) GetByUserID(ctx context.Context, userID string) (*entity.Reporter, error) {
	iter := r.client.Collection("reporters").
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Reporter", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query reporter by user", err)
	}

	var reporter entity.Reporter
	if err := doc.DataTo(&reporter); err != nil {
		return nil, errors.Internal("Failed to parse reporter data", err)
	}

	return &reporter, nil
}

func (r *firestoreReporterRepository) List(ctx context.Context) ([]*entity.Reporter, error) {
	iter := r.client.Collection("reporters").
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var reporters []*entity.Reporter
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reporters", err)
		}
		var reporter entity.Reporter
		if err := doc.DataTo(&reporter); err != nil {
			return nil, errors.Internal("Failed to parse reporter data", err)
		}
		reporters = append(reporters, &reporter)
	}

	return reporters, nil
}

func (r *firestoreReporterRepository) Update(ctx context.Context, reporter *entity.Reporter) error {
	_, err := r.client.Collection("reporters").Doc(reporter.ID).Set(ctx, reporter)
	if err != nil {
		return errors.Internal("Failed to update reporter", err)
	}

	return nil
}
