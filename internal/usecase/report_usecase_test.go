package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"corruptx/internal/domain/entity"
	"corruptx/pkg/errors"
)

func validSubmission(campaignID string) SubmitReportInput {
	lat, lng := 12.9712, 77.5946
	return SubmitReportInput{
		File:            strings.NewReader("evidence bytes"),
		Filename:        "evidence.jpg",
		ContentType:     "image/jpeg",
		Size:            1024,
		Description:     "Officer demanded a bribe to release the permit",
		Location:        "City licensing office",
		CorruptionType:  "Bribery",
		CampaignID:      campaignID,
		Latitude:        &lat,
		Longitude:       &lng,
		IsAnonymous:     false,
		ReporterName:    "A Citizen",
		ReporterContact: "citizen@example.com",
	}
}

func newReportFixture() (*ReportUseCase, *fakeReportRepo, *fakeCampaignRepo, *fakeCampaignRequestRepo, *fakeMediaStore) {
	reportRepo := newFakeReportRepo()
	campaignRepo := newFakeCampaignRepo()
	requestRepo := newFakeCampaignRequestRepo()
	media := newFakeMediaStore()
	uc := NewReportUseCase(reportRepo, campaignRepo, requestRepo, media, nil)
	return uc, reportRepo, campaignRepo, requestRepo, media
}

func seedCampaign(repo *fakeCampaignRepo, id string) {
	repo.Create(context.Background(), &entity.Campaign{
		ID:     id,
		Title:  "Anti-Bribery Drive",
		Type:   "Awareness",
		Status: entity.CampaignStatusActive,
	})
}

func TestSubmitReportSuccess(t *testing.T) {
	uc, reportRepo, campaignRepo, _, media := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	result, err := uc.SubmitReport(context.Background(), "user-1", validSubmission("camp-1"))

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "user-1", result.Report.UserID)
	assert.Equal(t, "Awareness", result.Report.CampaignType)
	assert.False(t, result.Report.CampaignPending)
	assert.True(t, strings.HasPrefix(result.Report.FilePath, "user-1/"))
	assert.True(t, strings.HasSuffix(result.Report.FilePath, ".jpg"))
	assert.Equal(t, 1, media.objectCount())
	assert.Len(t, reportRepo.reports, 1)
}

func TestSubmitReportAcceptsWebmRejectsGif(t *testing.T) {
	uc, _, campaignRepo, _, _ := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	input := validSubmission("camp-1")
	input.Filename = "evidence.webm"
	input.ContentType = "video/webm"
	result, err := uc.SubmitReport(context.Background(), "user-1", input)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Report.FilePath, ".webm"))

	input = validSubmission("camp-1")
	input.Filename = "evidence.gif"
	input.ContentType = "image/gif"
	_, err = uc.SubmitReport(context.Background(), "user-1", input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitReportMissingCoordinatesWritesNothing(t *testing.T) {
	uc, reportRepo, campaignRepo, _, media := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	input := validSubmission("camp-1")
	input.Latitude = nil
	input.Longitude = nil

	_, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, 0, media.objectCount())
	assert.Len(t, reportRepo.reports, 0)
}

func TestSubmitReportInsertFailureRemovesUpload(t *testing.T) {
	uc, reportRepo, campaignRepo, _, media := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")
	reportRepo.createErr = errors.Internal("store down", nil)

	_, err := uc.SubmitReport(context.Background(), "user-1", validSubmission("camp-1"))

	assert.Error(t, err)
	assert.Equal(t, 0, media.objectCount())
	assert.Len(t, media.removed, 1)
	assert.Len(t, reportRepo.reports, 0)
}

func TestSubmitReportAnonymousDropsIdentity(t *testing.T) {
	uc, reportRepo, campaignRepo, _, _ := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	input := validSubmission("camp-1")
	input.IsAnonymous = true
	input.ReporterName = "Should Be Dropped"
	input.ReporterContact = "dropped@example.com"

	result, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.NoError(t, err)
	assert.True(t, result.Report.IsAnonymous)
	assert.Empty(t, result.Report.ReporterName)
	assert.Empty(t, result.Report.ReporterContact)

	stored := reportRepo.reports[result.Report.ID]
	assert.Empty(t, stored.ReporterName)
	assert.Empty(t, stored.ReporterContact)
}

func TestSubmitReportNamedRequiresContact(t *testing.T) {
	uc, _, campaignRepo, _, _ := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	input := validSubmission("camp-1")
	input.ReporterContact = ""

	_, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitReportRejectsUnknownCorruptionType(t *testing.T) {
	uc, _, campaignRepo, _, _ := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	input := validSubmission("camp-1")
	input.CorruptionType = "Jaywalking"

	_, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.Error(t, err)
}

func TestSubmitReportNeedsCampaignOrProposal(t *testing.T) {
	uc, _, _, _, media := newReportFixture()

	input := validSubmission("")

	_, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.Error(t, err)
	assert.Equal(t, 0, media.objectCount())
}

func TestSubmitReportUnderProposal(t *testing.T) {
	uc, _, _, requestRepo, _ := newReportFixture()
	requestRepo.Create(context.Background(), &entity.CampaignRequest{
		ID:     "req-1",
		UserID: "user-1",
		Status: entity.RequestStatusPending,
	})

	input := validSubmission("")
	input.CampaignRequestID = "req-1"

	result, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.NoError(t, err)
	assert.True(t, result.Report.CampaignPending)
	assert.Equal(t, "req-1", result.Report.CampaignRequestID)
	assert.Empty(t, result.Report.CampaignID)
}

func TestSubmitReportRejectsForeignProposal(t *testing.T) {
	uc, _, _, requestRepo, _ := newReportFixture()
	requestRepo.Create(context.Background(), &entity.CampaignRequest{
		ID:     "req-1",
		UserID: "someone-else",
		Status: entity.RequestStatusPending,
	})

	input := validSubmission("")
	input.CampaignRequestID = "req-1"

	_, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSubmitReportBuildsShareIntents(t *testing.T) {
	uc, _, campaignRepo, _, _ := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	input := validSubmission("camp-1")
	input.ShareX = true
	input.ShareInstagram = true

	result, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, result.Share)
	assert.Contains(t, result.Share.XURL, "twitter.com/intent/tweet")
	assert.Contains(t, result.Share.InstagramText, "https://signed.example/")
	assert.Empty(t, result.Share.FacebookURL)
}

func TestSubmitReportShareFailureDoesNotFailSubmission(t *testing.T) {
	uc, reportRepo, campaignRepo, _, media := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")
	media.signErr = errors.Internal("signing down", nil)

	input := validSubmission("camp-1")
	input.ShareX = true

	result, err := uc.SubmitReport(context.Background(), "user-1", input)

	assert.NoError(t, err)
	assert.Nil(t, result.Share)
	assert.Len(t, reportRepo.reports, 1)
}

func TestDeleteReportRemovesRowAndObject(t *testing.T) {
	uc, reportRepo, campaignRepo, _, media := newReportFixture()
	seedCampaign(campaignRepo, "camp-1")

	result, err := uc.SubmitReport(context.Background(), "user-1", validSubmission("camp-1"))
	assert.NoError(t, err)

	err = uc.DeleteReport(context.Background(), result.Report.ID)

	assert.NoError(t, err)
	assert.Len(t, reportRepo.reports, 0)
	assert.Equal(t, 0, media.objectCount())
}

func TestListMyReportsNewestFirst(t *testing.T) {
	uc, reportRepo, _, _, _ := newReportFixture()
	base := time.Now()
	for i, id := range []string{"r1", "r2", "r3"} {
		reportRepo.Create(context.Background(), &entity.Report{
			ID:        id,
			UserID:    "user-1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	reportRepo.Create(context.Background(), &entity.Report{ID: "other", UserID: "user-2", CreatedAt: base})

	reports, total, err := uc.ListMyReports(context.Background(), "user-1", 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "r3", reports[0].ID)
	assert.Equal(t, "r1", reports[2].ID)
}
