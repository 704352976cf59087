package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/internal/domain/service"
	"corruptx/pkg/errors"
	"corruptx/pkg/logger"
)

const minProposalWords = 250

type CampaignRequestUseCase struct {
	requestRepo  repository.CampaignRequestRepository
	campaignRepo repository.CampaignRepository
	reportRepo   repository.ReportRepository
	media        service.MediaStorageService
}

func NewCampaignRequestUseCase(
	requestRepo repository.CampaignRequestRepository,
	campaignRepo repository.CampaignRepository,
	reportRepo repository.ReportRepository,
	media service.MediaStorageService,
) *CampaignRequestUseCase {
	return &CampaignRequestUseCase{
		requestRepo:  requestRepo,
		campaignRepo: campaignRepo,
		reportRepo:   reportRepo,
		media:        media,
	}
}

type CampaignRequestInput struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Location      string `json:"location" validate:"required"`
	ImpactSummary string `json:"impact_summary"`
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// SubmitProposal files a new campaign proposal in pending state. The
// description must carry at least 250 words so moderators get enough
// substance to judge it on.
func (uc *CampaignRequestUseCase) SubmitProposal(ctx context.Context, userID string, input CampaignRequestInput) (*entity.CampaignRequest, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.BadRequest("Proposal title is required", nil)
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.BadRequest("Proposal location is required", nil)
	}
	if wordCount(input.Description) < minProposalWords {
		return nil, errors.BadRequest("Proposal description must be at least 250 words", nil)
	}

	request := &entity.CampaignRequest{
		ID:            uuid.New().String(),
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Location:      input.Location,
		ImpactSummary: input.ImpactSummary,
		Status:        entity.RequestStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *CampaignRequestUseCase) GetProposal(ctx context.Context, id string) (*entity.CampaignRequest, error) {
	return uc.requestRepo.GetByID(ctx, id)
}

func (uc *CampaignRequestUseCase) ListProposals(ctx context.Context) ([]*entity.CampaignRequest, error) {
	return uc.requestRepo.List(ctx)
}

// ListMyProposals returns the caller's own proposals so the submission
// form can offer an approved-or-pending proposal to file reports under.
func (uc *CampaignRequestUseCase) ListMyProposals(ctx context.Context, userID string) ([]*entity.CampaignRequest, error) {
	all, err := uc.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]*entity.CampaignRequest, 0)
	for _, r := range all {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

// ApproveProposal promotes a pending proposal into a live Awareness
// campaign and re-links every report filed under the proposal to the new
// campaign. A report that fails to re-link is logged and left pending; the
// approval itself is not rolled back.
func (uc *CampaignRequestUseCase) ApproveProposal(ctx context.Context, id string) (*entity.Campaign, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.RequestStatusPending {
		return nil, errors.Conflict("Proposal has already been moderated")
	}

	campaign := &entity.Campaign{
		ID:          uuid.New().String(),
		Title:       request.Title,
		Description: request.Description,
		Type:        "Awareness",
		Status:      entity.CampaignStatusActive,
		Location:    request.Location,
		CreatedBy:   request.UserID,
		CreatedAt:   time.Now(),
	}
	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, errors.Internal("Failed to create campaign from proposal", err)
	}

	if err := uc.requestRepo.UpdateStatus(ctx, id, entity.RequestStatusApproved); err != nil {
		return nil, errors.Internal("Failed to mark proposal approved", err)
	}

	reports, err := uc.reportRepo.ListByCampaignRequest(ctx, id)
	if err != nil {
		logger.Warn("Failed to list reports for approved proposal %s: %v", id, err)
		return campaign, nil
	}
	for _, r := range reports {
		r.CampaignID = campaign.ID
		r.CampaignType = campaign.Type
		r.CampaignPending = false
		if err := uc.reportRepo.Update(ctx, r); err != nil {
			logger.Warn("Failed to re-link report %s to campaign %s: %v", r.ID, campaign.ID, err)
		}
	}

	return campaign, nil
}

// RejectProposal marks the proposal rejected and purges the evidence filed
// under it, objects first then rows. Individual purge failures are logged
// and skipped; the rejection only fails if the status write itself fails.
func (uc *CampaignRequestUseCase) RejectProposal(ctx context.Context, id string) error {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != entity.RequestStatusPending {
		return errors.Conflict("Proposal has already been moderated")
	}

	reports, err := uc.reportRepo.ListByCampaignRequest(ctx, id)
	if err != nil {
		logger.Warn("Failed to list reports for rejected proposal %s: %v", id, err)
		reports = nil
	}
	for _, r := range reports {
		if r.FilePath != "" {
			if err := uc.media.Remove(ctx, r.FilePath); err != nil {
				logger.Warn("Failed to remove media %s for rejected proposal: %v", r.FilePath, err)
			}
		}
		if err := uc.reportRepo.Delete(ctx, r.ID); err != nil {
			logger.Warn("Failed to delete report %s for rejected proposal: %v", r.ID, err)
		}
	}

	if err := uc.requestRepo.UpdateStatus(ctx, id, entity.RequestStatusRejected); err != nil {
		return errors.Internal("Failed to mark proposal rejected", err)
	}
	return nil
}
