package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/errors"
)

type CampaignUseCase struct {
	campaignRepo repository.CampaignRepository
	reportRepo   repository.ReportRepository
}

func NewCampaignUseCase(
	campaignRepo repository.CampaignRepository,
	reportRepo repository.ReportRepository,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaignRepo: campaignRepo,
		reportRepo:   reportRepo,
	}
}

type CampaignInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Location    string     `json:"location"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

func (uc *CampaignUseCase) CreateCampaign(ctx context.Context, createdBy string, input CampaignInput) (*entity.Campaign, error) {
	if !entity.IsValidCampaignType(input.Type) {
		return nil, errors.BadRequest("Invalid campaign type", nil)
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, errors.BadRequest("Campaign end date must be after its start date", nil)
	}

	campaign := &entity.Campaign{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Type:        input.Type,
		Status:      entity.CampaignStatusActive,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}

	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (uc *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*entity.Campaign, error) {
	return uc.campaignRepo.GetByID(ctx, id)
}

// ListCampaigns returns campaigns, optionally restricted to one status.
// Citizens see only active campaigns; admins pass an empty status.
func (uc *CampaignUseCase) ListCampaigns(ctx context.Context, status string) ([]*entity.Campaign, error) {
	return uc.campaignRepo.List(ctx, status)
}

func (uc *CampaignUseCase) UpdateCampaign(ctx context.Context, id string, input CampaignInput) (*entity.Campaign, error) {
	campaign, err := uc.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidCampaignType(input.Type) {
		return nil, errors.BadRequest("Invalid campaign type", nil)
	}

	campaign.Title = strings.TrimSpace(input.Title)
	campaign.Description = input.Description
	campaign.Type = input.Type
	campaign.Location = input.Location
	campaign.StartDate = input.StartDate
	campaign.EndDate = input.EndDate

	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (uc *CampaignUseCase) SetStatus(ctx context.Context, id, status string) (*entity.Campaign, error) {
	if !entity.IsValidCampaignStatus(status) {
		return nil, errors.BadRequest("Invalid campaign status", nil)
	}
	campaign, err := uc.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	campaign.Status = status
	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// DeleteCampaign refuses to delete a campaign that still has reports
// attached; evidence is never orphaned by removing its campaign.
func (uc *CampaignUseCase) DeleteCampaign(ctx context.Context, id string) error {
	if _, err := uc.campaignRepo.GetByID(ctx, id); err != nil {
		return err
	}
	reports, _, err := uc.reportRepo.List(ctx, repository.ReportFilter{CampaignID: id}, 1, 0)
	if err != nil {
		return err
	}
	if len(reports) > 0 {
		return errors.Conflict("Campaign still has reports attached")
	}
	return uc.campaignRepo.Delete(ctx, id)
}
