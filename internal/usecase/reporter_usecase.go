package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/errors"
	"corruptx/pkg/logger"
)

type ReporterUseCase struct {
	reporterRepo   repository.ReporterRepository
	assignmentRepo repository.ReporterAssignmentRepository
	profileRepo    repository.ProfileRepository
}

func NewReporterUseCase(
	reporterRepo repository.ReporterRepository,
	assignmentRepo repository.ReporterAssignmentRepository,
	profileRepo repository.ProfileRepository,
) *ReporterUseCase {
	return &ReporterUseCase{
		reporterRepo:   reporterRepo,
		assignmentRepo: assignmentRepo,
		profileRepo:    profileRepo,
	}
}

type JoinReporterInput struct {
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age" validate:"required,min=18"`
	Gender    string   `json:"gender"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	RadiusKm  float64  `json:"radius_km"`
}

// Join registers the caller as a verification reporter. One registration
// per user; the profile role is promoted to reporter on success.
func (uc *ReporterUseCase) Join(ctx context.Context, userID string, input JoinReporterInput) (*entity.Reporter, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if input.Age < 18 {
		return nil, errors.BadRequest("Reporters must be 18 or older", nil)
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, errors.BadRequest("Location access is required to join as a reporter", nil)
	}

	if existing, err := uc.reporterRepo.GetByUserID(ctx, userID); err == nil && existing != nil {
		return nil, errors.Conflict("You are already registered as a reporter")
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = entity.DefaultReporterRadiusKm
	}

	reporter := &entity.Reporter{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Age:       input.Age,
		Gender:    input.Gender,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		RadiusKm:  radius,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := uc.reporterRepo.Create(ctx, reporter); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.UpdateRole(ctx, userID, entity.RoleReporter); err != nil {
		// The reporter row exists; the role catches up on the next
		// successful write rather than rolling the registration back.
		logger.Warn("Failed to promote profile %s to reporter role: %v", userID, err)
		return reporter, errors.Internal("Registered, but failed to update your profile role", err)
	}

	return reporter, nil
}

func (uc *ReporterUseCase) GetByUser(ctx context.Context, userID string) (*entity.Reporter, error) {
	return uc.reporterRepo.GetByUserID(ctx, userID)
}

// ReporterOverview pairs a reporter with their assignment counts for the
// admin listing.
type ReporterOverview struct {
	*entity.Reporter
	AssignmentsTotal    int `json:"assignments_total"`
	AssignmentsAccepted int `json:"assignments_accepted"`
}

func (uc *ReporterUseCase) ListReporters(ctx context.Context) ([]*ReporterOverview, error) {
	reporters, err := uc.reporterRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]*ReporterOverview, 0, len(reporters))
	for _, r := range reporters {
		overview := &ReporterOverview{Reporter: r}
		assignments, err := uc.assignmentRepo.ListByReporter(ctx, r.ID, "")
		if err != nil {
			logger.Warn("Failed to load assignments for reporter %s: %v", r.ID, err)
		} else {
			overview.AssignmentsTotal = len(assignments)
			for _, a := range assignments {
				if a.Status == entity.AssignmentStatusAccepted {
					overview.AssignmentsAccepted++
				}
			}
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}

// SetActive pauses or resumes a reporter. Inactive reporters keep their
// registration but receive no new assignments.
func (uc *ReporterUseCase) SetActive(ctx context.Context, reporterID string, active bool) (*entity.Reporter, error) {
	reporter, err := uc.reporterRepo.GetByID(ctx, reporterID)
	if err != nil {
		return nil, err
	}
	reporter.IsActive = active
	if err := uc.reporterRepo.Update(ctx, reporter); err != nil {
		return nil, err
	}
	return reporter, nil
}
