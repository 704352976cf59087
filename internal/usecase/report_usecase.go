package usecase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/internal/domain/service"
	"corruptx/internal/infrastructure/websocket"
	"corruptx/pkg/errors"
	"corruptx/pkg/logger"
)

const (
	maxEvidenceSize = 50 * 1024 * 1024
	shareURLTTL     = 60 * time.Second
	shareTextLimit  = 240
)

var allowedEvidenceTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/jpg":       true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	campaignRepo repository.CampaignRepository
	requestRepo  repository.CampaignRequestRepository
	media        service.MediaStorageService
	wsManager    *websocket.Manager
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	campaignRepo repository.CampaignRepository,
	requestRepo repository.CampaignRequestRepository,
	media service.MediaStorageService,
	wsManager *websocket.Manager,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		campaignRepo: campaignRepo,
		requestRepo:  requestRepo,
		media:        media,
		wsManager:    wsManager,
	}
}

type SubmitReportInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64

	Description    string
	Location       string
	CorruptionType string

	CampaignID        string
	CampaignRequestID string

	Latitude  *float64
	Longitude *float64

	ShareX         bool
	ShareInstagram bool
	ShareFacebook  bool

	IsAnonymous     bool
	ReporterName    string
	ReporterContact string
}

// ShareIntents carries pre-built share targets for the networks the
// submitter opted into. The media link inside them expires after a minute.
type ShareIntents struct {
	XURL          string `json:"x_url,omitempty"`
	FacebookURL   string `json:"facebook_url,omitempty"`
	InstagramText string `json:"instagram_text,omitempty"`
}

type SubmitReportResult struct {
	Report *entity.Report `json:"report"`
	Share  *ShareIntents  `json:"share,omitempty"`
}

// SubmitReport runs the evidence submission workflow: validate, gate on
// coordinates, upload the file, then persist the row. If the row insert
// fails the uploaded object is removed again so storage never holds
// evidence with no matching record. Share link generation happens after
// the row is committed and never fails the submission.
func (uc *ReportUseCase) SubmitReport(ctx context.Context, userID string, input SubmitReportInput) (*SubmitReportResult, error) {
	if err := uc.validateSubmission(ctx, userID, &input); err != nil {
		return nil, err
	}

	campaignType := ""
	if input.CampaignID != "" {
		campaign, err := uc.campaignRepo.GetByID(ctx, input.CampaignID)
		if err != nil {
			return nil, errors.BadRequest("Selected campaign does not exist", err)
		}
		campaignType = campaign.Type
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	filePath := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), ext)

	if err := uc.media.Upload(ctx, filePath, input.ContentType, input.File); err != nil {
		return nil, errors.Internal("Failed to upload evidence file", err)
	}

	report := &entity.Report{
		ID:                uuid.New().String(),
		UserID:            userID,
		FilePath:          filePath,
		Description:       input.Description,
		Location:          input.Location,
		CorruptionType:    input.CorruptionType,
		CampaignID:        input.CampaignID,
		CampaignType:      campaignType,
		CampaignRequestID: input.CampaignRequestID,
		CampaignPending:   input.CampaignRequestID != "",
		Latitude:          *input.Latitude,
		Longitude:         *input.Longitude,
		ShareX:            input.ShareX,
		ShareInstagram:    input.ShareInstagram,
		ShareFacebook:     input.ShareFacebook,
		IsAnonymous:       input.IsAnonymous,
		CreatedAt:         time.Now(),
	}
	if !input.IsAnonymous {
		report.ReporterName = input.ReporterName
		report.ReporterContact = input.ReporterContact
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		if removeErr := uc.media.Remove(ctx, filePath); removeErr != nil {
			logger.Warn("Orphaned evidence object %s after failed insert: %v", filePath, removeErr)
		}
		return nil, errors.Internal("Failed to save report", err)
	}

	result := &SubmitReportResult{
		Report: report,
		Share:  uc.buildShareIntents(ctx, report),
	}

	if uc.wsManager != nil {
		uc.wsManager.Broadcast(websocket.Event{
			Type: "report.created",
			Payload: map[string]interface{}{
				"id":              report.ID,
				"latitude":        report.Latitude,
				"longitude":       report.Longitude,
				"corruption_type": report.CorruptionType,
				"campaign_id":     report.CampaignID,
			},
		})
	}

	return result, nil
}

func (uc *ReportUseCase) validateSubmission(ctx context.Context, userID string, input *SubmitReportInput) error {
	if input.File == nil || input.Filename == "" {
		return errors.BadRequest("Please select a file to upload", nil)
	}
	if !allowedEvidenceTypes[strings.ToLower(input.ContentType)] {
		return errors.BadRequest("Only image and video files are accepted", nil)
	}
	if input.Size > maxEvidenceSize {
		return errors.BadRequest("File must be 50MB or smaller", nil)
	}
	if input.CampaignID == "" && input.CampaignRequestID == "" {
		return errors.BadRequest("Please select a campaign or submit a campaign proposal first", nil)
	}
	if input.CampaignID != "" && input.CampaignRequestID != "" {
		return errors.BadRequest("A report belongs to either a campaign or a proposal, not both", nil)
	}
	if input.CampaignRequestID != "" {
		request, err := uc.requestRepo.GetByID(ctx, input.CampaignRequestID)
		if err != nil {
			return errors.BadRequest("Campaign proposal not found", err)
		}
		if request.UserID != userID {
			return errors.Forbidden("You can only attach reports to your own proposal", nil)
		}
	}
	if strings.TrimSpace(input.Description) == "" {
		return errors.BadRequest("Description is required", nil)
	}
	if strings.TrimSpace(input.Location) == "" {
		return errors.BadRequest("Location is required", nil)
	}
	if !entity.IsValidCorruptionType(input.CorruptionType) {
		return errors.BadRequest("Please select a valid corruption type", nil)
	}
	if !input.IsAnonymous {
		if strings.TrimSpace(input.ReporterName) == "" || strings.TrimSpace(input.ReporterContact) == "" {
			return errors.BadRequest("Name and contact are required unless reporting anonymously", nil)
		}
	}
	// Hard gate: no coordinates, no submission. Nothing has been written yet.
	if input.Latitude == nil || input.Longitude == nil {
		return errors.BadRequest("Location access is required to submit a report", nil)
	}
	return nil
}

// buildShareIntents signs a short-lived media URL and assembles the share
// targets. Any failure here is logged and swallowed; the report is already
// committed.
func (uc *ReportUseCase) buildShareIntents(ctx context.Context, report *entity.Report) *ShareIntents {
	if !report.ShareX && !report.ShareInstagram && !report.ShareFacebook {
		return nil
	}

	signedURL, err := uc.media.SignedURL(ctx, report.FilePath, shareURLTTL)
	if err != nil {
		logger.Warn("Failed to sign share URL for report %s: %v", report.ID, err)
		return nil
	}

	text := report.Description
	if len(text) > shareTextLimit {
		text = text[:shareTextLimit] + "..."
	}
	text = fmt.Sprintf("Corruption report (%s): %s", report.CorruptionType, text)

	intents := &ShareIntents{}
	if report.ShareX {
		intents.XURL = fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s",
			url.QueryEscape(text), url.QueryEscape(signedURL))
	}
	if report.ShareFacebook {
		intents.FacebookURL = fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s",
			url.QueryEscape(signedURL), url.QueryEscape(text))
	}
	if report.ShareInstagram {
		intents.InstagramText = fmt.Sprintf("%s %s", text, signedURL)
	}
	return intents
}

// ListMyReports returns the caller's own submissions, newest first.
func (uc *ReportUseCase) ListMyReports(ctx context.Context, userID string, limit, offset int) ([]*entity.Report, int64, error) {
	return uc.reportRepo.ListByUser(ctx, userID, limit, offset)
}

func (uc *ReportUseCase) GetReport(ctx context.Context, id string) (*entity.Report, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

// AdminListReports returns filtered reports with a viewing URL signed per
// row. Rows whose object can't be signed keep an empty URL rather than
// failing the whole page.
func (uc *ReportUseCase) AdminListReports(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*AdminReportView, int64, error) {
	reports, total, err := uc.reportRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*AdminReportView, 0, len(reports))
	for _, r := range reports {
		view := &AdminReportView{Report: r}
		signed, err := uc.media.SignedURL(ctx, r.FilePath, shareURLTTL)
		if err != nil {
			logger.Warn("Failed to sign media URL for report %s: %v", r.ID, err)
		} else {
			view.MediaURL = signed
		}
		views = append(views, view)
	}
	return views, total, nil
}

type AdminReportView struct {
	*entity.Report
	MediaURL string `json:"media_url,omitempty"`
}

// DeleteReport removes the row first, then the stored object. A failed
// object delete is logged; the row is already gone and must stay gone.
func (uc *ReportUseCase) DeleteReport(ctx context.Context, id string) error {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.reportRepo.Delete(ctx, id); err != nil {
		return err
	}
	if report.FilePath != "" {
		if err := uc.media.Remove(ctx, report.FilePath); err != nil {
			logger.Warn("Failed to remove media for deleted report %s: %v", id, err)
		}
	}
	return nil
}

// Stats summarizes the report store for the admin dashboard.
func (uc *ReportUseCase) Stats(ctx context.Context) (*ReportStats, error) {
	reports, total, err := uc.reportRepo.List(ctx, repository.ReportFilter{}, 10, 0)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]int64)
	for _, r := range reports {
		byType[r.CorruptionType]++
	}
	return &ReportStats{
		Total:        total,
		Recent:       reports,
		RecentByType: byType,
	}, nil
}

type ReportStats struct {
	Total        int64            `json:"total"`
	Recent       []*entity.Report `json:"recent"`
	RecentByType map[string]int64 `json:"recent_by_type"`
}
