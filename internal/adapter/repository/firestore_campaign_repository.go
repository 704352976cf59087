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

type firestoreCampaignRepository struct {
	client *firestore.Client
}

func NewFirestoreCampaignRepository(client *firestore.Client) repository.CampaignRepository {
	return &firestoreCampaignRepository{
		client: client,
	}
}

func (r *firestoreCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	if campaign.ID == "" {
		doc := r.client.Collection("campaigns").NewDoc()
		campaign.ID = doc.ID
	}

	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("campaigns").Doc(campaign.ID).Set(ctx, campaign)
	if err != nil {
		return errors.Internal("Failed to create campaign", err)
	}

	return nil
}

func (r *firestoreCampaignRepository) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	doc, err := r.client.Collection("campaigns").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Campaign", err)
		}
		return nil, errors.Internal("Failed to get campaign", err)
	}

	var campaign entity.Campaign
	if err := doc.DataTo(&campaign); err != nil {
		return nil, errors.Internal("Failed to parse campaign data", err)
	}

	return &campaign, nil
}

func (r *firestoreCampaignRepository) List(ctx context.Context, status string) ([]*entity.Campaign, error) {
	query := r.client.Collection("campaigns").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var campaigns []*entity.Campaign

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate campaigns", err)
		}
		var campaign entity.Campaign
		if err := doc.DataTo(&campaign); err != nil {
			return nil, errors.Internal("Failed to parse campaign data", err)
		}
		campaigns = append(campaigns, &campaign)
	}

	return campaigns, nil
}

func (r *firestoreCampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	_, err := r.client.Collection("campaigns").Doc(campaign.ID).Set(ctx, campaign)
	if err != nil {
		return errors.Internal("Failed to update campaign", err)
	}

	return nil
}

func (r *firestoreCampaignRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("campaigns").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete campaign", err)
	}

	return nil
}
