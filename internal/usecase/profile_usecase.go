package usecase

import (
	"context"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/errors"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

func (uc *ProfileUseCase) ListProfiles(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	return uc.profileRepo.List(ctx, limit, offset)
}

// SetRole grants or revokes the admin role. Admins cannot demote
// themselves; the reporter role is earned through registration, not
// granted here.
func (uc *ProfileUseCase) SetRole(ctx context.Context, adminID, targetID, role string) (*entity.Profile, error) {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, errors.BadRequest("Role must be user or admin", nil)
	}
	if adminID == targetID {
		return nil, errors.Forbidden("You cannot change your own role", nil)
	}

	profile, err := uc.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := uc.profileRepo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, err
	}
	profile.Role = role
	return profile, nil
}
