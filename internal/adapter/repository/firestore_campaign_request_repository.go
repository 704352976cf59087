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

type firestoreCampaignRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreCampaignRequestRepository(client *firestore.Client) repository.CampaignRequestRepository {
	return &firestoreCampaignRequestRepository{
		client: client,
	}
}

func (r *firestoreCampaignRequestRepository) Create(ctx context.Context, request *entity.CampaignRequest) error {
	if request.ID == "" {
		doc := r.client.Collection("campaign_requests").NewDoc()
		request.ID = doc.ID
	}

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	if request.Status == "" {
		request.Status = entity.RequestStatusPending
	}

	_, err := r.client.Collection("campaign_requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create campaign request", err)
	}

	return nil
}

func (r *firestoreCampaignRequestRepository) GetByID(ctx context.Context, id string) (*entity.CampaignRequest, error) {
	doc, err := r.client.Collection("campaign_requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Campaign request", err)
		}
		return nil, errors.Internal("Failed to get campaign request", err)
	}

	var request entity.CampaignRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse campaign request data", err)
	}

	return &request, nil
}

func (r *firestoreCampaignRequestRepository) List(ctx context.Context) ([]*entity.CampaignRequest, error) {
	iter := r.client.Collection("campaign_requests").
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var requests []*entity.CampaignRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate campaign requests", err)
		}
		var request entity.CampaignRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, errors.Internal("Failed to parse campaign request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

func (r *firestoreCampaignRequestRepository) UpdateStatus(ctx context.Context, id, requestStatus string) error {
	_, err := r.client.Collection("campaign_requests").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: requestStatus},
	})
	if err != nil {
		return errors.Internal("Failed to update campaign request status", err)
	}

	return nil
}
