package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"corruptx/internal/domain/entity"
	"corruptx/pkg/errors"
)

func newCampaignFixture() (*CampaignUseCase, *fakeCampaignRepo, *fakeReportRepo) {
	campaignRepo := newFakeCampaignRepo()
	reportRepo := newFakeReportRepo()
	uc := NewCampaignUseCase(campaignRepo, reportRepo)
	return uc, campaignRepo, reportRepo
}

func TestCreateCampaignStartsActive(t *testing.T) {
	uc, campaignRepo, _ := newCampaignFixture()

	campaign, err := uc.CreateCampaign(context.Background(), "admin-1", CampaignInput{
		Title:       "Anti-Bribery Drive",
		Description: "Report bribery at permit offices",
		Type:        "Awareness",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, campaign.Status)
	assert.Equal(t, "admin-1", campaign.CreatedBy)
	assert.Len(t, campaignRepo.campaigns, 1)
}

func TestCreateCampaignRejectsUnknownType(t *testing.T) {
	uc, _, _ := newCampaignFixture()

	_, err := uc.CreateCampaign(context.Background(), "admin-1", CampaignInput{
		Title:       "Anti-Bribery Drive",
		Description: "desc",
		Type:        "Surveillance",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateCampaignRejectsInvertedDates(t *testing.T) {
	uc, _, _ := newCampaignFixture()

	start := time.Now()
	end := start.Add(-24 * time.Hour)

	_, err := uc.CreateCampaign(context.Background(), "admin-1", CampaignInput{
		Title:       "Anti-Bribery Drive",
		Description: "desc",
		Type:        "Awareness",
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeleteCampaignRefusesWhileReportsAttached(t *testing.T) {
	uc, campaignRepo, reportRepo := newCampaignFixture()
	ctx := context.Background()

	campaignRepo.Create(ctx, &entity.Campaign{ID: "camp-1", Status: entity.CampaignStatusActive})
	reportRepo.Create(ctx, &entity.Report{ID: "rep-1", CampaignID: "camp-1"})

	err := uc.DeleteCampaign(ctx, "camp-1")
	assert.True(t, errors.Is(err, "CONFLICT"))

	reportRepo.Delete(ctx, "rep-1")
	err = uc.DeleteCampaign(ctx, "camp-1")
	assert.NoError(t, err)
	assert.Len(t, campaignRepo.campaigns, 0)
}

func TestSetStatusValidatesStatus(t *testing.T) {
	uc, campaignRepo, _ := newCampaignFixture()
	campaignRepo.Create(context.Background(), &entity.Campaign{ID: "camp-1", Status: entity.CampaignStatusActive})

	_, err := uc.SetStatus(context.Background(), "camp-1", "archived")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	campaign, err := uc.SetStatus(context.Background(), "camp-1", entity.CampaignStatusPaused)
	assert.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusPaused, campaign.Status)
}
