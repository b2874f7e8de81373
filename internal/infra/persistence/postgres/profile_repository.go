package postgres

import (
	"context"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	"quorum/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile row linking a user to a role.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		UserID: profile.UserID,
		RoleID: profile.RoleID,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("profile references an unknown user or role")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}
