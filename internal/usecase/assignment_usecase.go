package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/internal/domain/service"
	"corruptx/pkg/errors"
	"corruptx/pkg/logger"
)

type AssignmentUseCase struct {
	assignmentRepo repository.ReporterAssignmentRepository
	reporterRepo   repository.ReporterRepository
	reportRepo     repository.ReportRepository
	media          service.MediaStorageService
}

func NewAssignmentUseCase(
	assignmentRepo repository.ReporterAssignmentRepository,
	reporterRepo repository.ReporterRepository,
	reportRepo repository.ReportRepository,
	media service.MediaStorageService,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		assignmentRepo: assignmentRepo,
		reporterRepo:   reporterRepo,
		reportRepo:     reportRepo,
		media:          media,
	}
}

// AssignmentView joins an assignment with the report it points at. The
// report may be nil if its row was purged after the assignment was made.
type AssignmentView struct {
	*entity.ReporterAssignment
	Report *entity.Report `json:"report,omitempty"`
}

// Worklist returns the caller's assignments joined with report details.
// By default only notified assignments are returned; includeHandled adds
// accepted and ignored ones.
func (uc *AssignmentUseCase) Worklist(ctx context.Context, userID string, includeHandled bool) ([]*AssignmentView, error) {
	reporter, err := uc.reporterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := entity.AssignmentStatusNotified
	if includeHandled {
		status = ""
	}
	assignments, err := uc.assignmentRepo.ListByReporter(ctx, reporter.ID, status)
	if err != nil {
		return nil, err
	}

	views := make([]*AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		view := &AssignmentView{ReporterAssignment: a}
		report, err := uc.reportRepo.GetByID(ctx, a.ReportID)
		if err != nil {
			logger.Warn("Assignment %s points at missing report %s: %v", a.ID, a.ReportID, err)
		} else {
			view.Report = report
		}
		views = append(views, view)
	}
	return views, nil
}

// Accept moves a notified assignment to accepted and links the report to
// the reporter. The status write commits first; if the report linkage
// write then fails, the acceptance stands and the linkage is logged as
// missing rather than rolled back.
func (uc *AssignmentUseCase) Accept(ctx context.Context, userID, assignmentID string) (*entity.ReporterAssignment, error) {
	assignment, err := uc.ownedAssignment(ctx, userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if entity.IsTerminalAssignmentStatus(assignment.Status) {
		return nil, errors.Conflict("Assignment has already been handled")
	}

	reporter, err := uc.reporterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.assignmentRepo.UpdateStatus(ctx, assignmentID, entity.AssignmentStatusAccepted); err != nil {
		return nil, errors.Internal("Failed to accept assignment", err)
	}
	assignment.Status = entity.AssignmentStatusAccepted

	report, err := uc.reportRepo.GetByID(ctx, assignment.ReportID)
	if err != nil {
		logger.Warn("Accepted assignment %s but report %s not found: %v", assignmentID, assignment.ReportID, err)
		return assignment, nil
	}
	now := time.Now()
	report.AssignedReporterID = reporter.ID
	report.AcceptedAt = &now
	if err := uc.reportRepo.Update(ctx, report); err != nil {
		logger.Warn("Accepted assignment %s but failed to link report %s: %v", assignmentID, report.ID, err)
	}

	return assignment, nil
}

// Ignore dismisses a notified assignment. The report is untouched.
func (uc *AssignmentUseCase) Ignore(ctx context.Context, userID, assignmentID string) (*entity.ReporterAssignment, error) {
	assignment, err := uc.ownedAssignment(ctx, userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if entity.IsTerminalAssignmentStatus(assignment.Status) {
		return nil, errors.Conflict("Assignment has already been handled")
	}

	if err := uc.assignmentRepo.UpdateStatus(ctx, assignmentID, entity.AssignmentStatusIgnored); err != nil {
		return nil, errors.Internal("Failed to ignore assignment", err)
	}
	assignment.Status = entity.AssignmentStatusIgnored
	return assignment, nil
}

func (uc *AssignmentUseCase) ownedAssignment(ctx context.Context, userID, assignmentID string) (*entity.ReporterAssignment, error) {
	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	reporter, err := uc.reporterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assignment.ReporterID != reporter.ID {
		return nil, errors.Forbidden("This assignment belongs to another reporter", nil)
	}
	return assignment, nil
}

// Dispatch creates a notified assignment by hand. Automatic matching runs
// outside this service; this is the admin escape hatch.
func (uc *AssignmentUseCase) Dispatch(ctx context.Context, reporterID, reportID string) (*entity.ReporterAssignment, error) {
	reporter, err := uc.reporterRepo.GetByID(ctx, reporterID)
	if err != nil {
		return nil, err
	}
	if !reporter.IsActive {
		return nil, errors.Conflict("Reporter is not active")
	}
	if _, err := uc.reportRepo.GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	assignment := &entity.ReporterAssignment{
		ID:         uuid.New().String(),
		ReporterID: reporterID,
		ReportID:   reportID,
		Status:     entity.AssignmentStatusNotified,
		CreatedAt:  time.Now(),
	}
	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// Verification media accepts gif snapshots but not webm; evidence
// submissions are the other way around.
var allowedVerificationTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/jpg":       true,
	"image/gif":       true,
	"video/mp4":       true,
	"video/quicktime": true,
}

type SubmitVerificationInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
	Description string
}

// SubmitVerification uploads the on-site verification media and stamps
// the report's verification fields. If the report update fails, the
// uploaded object is removed again so the bucket never holds verification
// media no report points at.
func (uc *AssignmentUseCase) SubmitVerification(ctx context.Context, userID, reportID string, input SubmitVerificationInput) (*entity.Report, error) {
	if input.File == nil || input.Filename == "" {
		return nil, errors.BadRequest("Please select a verification file", nil)
	}
	if !allowedVerificationTypes[strings.ToLower(input.ContentType)] {
		return nil, errors.BadRequest("Only image and video files are accepted", nil)
	}
	if input.Size > maxEvidenceSize {
		return nil, errors.BadRequest("File must be 50MB or smaller", nil)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.BadRequest("Verification description is required", nil)
	}

	reporter, err := uc.reporterRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AssignedReporterID != reporter.ID {
		return nil, errors.Forbidden("This report is not assigned to you", nil)
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	key := fmt.Sprintf("reporter-verifications/%s_%s_%d%s", reporter.ID, reportID, time.Now().Unix(), ext)

	if err := uc.media.Upload(ctx, key, input.ContentType, input.File); err != nil {
		return nil, errors.Internal("Failed to upload verification file", err)
	}

	now := time.Now()
	report.VerificationMediaURL = uc.media.PublicURL(key)
	report.VerificationDescription = input.Description
	report.VerificationStatus = entity.VerificationStatusSubmitted
	report.VerifiedBy = reporter.ID
	report.VerifiedAt = &now

	if err := uc.reportRepo.Update(ctx, report); err != nil {
		if removeErr := uc.media.Remove(ctx, key); removeErr != nil {
			logger.Warn("Orphaned verification object %s after failed update: %v", key, removeErr)
		}
		return nil, errors.Internal("Failed to save verification", err)
	}

	return report, nil
}
