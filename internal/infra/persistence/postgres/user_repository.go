// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	"quorum/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// createUserColumns is the statically declared allowed column set for user
// inserts. The token column and the timestamps are store-owned and can never
// be set from caller-controlled input.
var createUserColumns = []string{"id", "first_name", "last_name", "username", "email", "password", "created_at", "updated_at"}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the role assignment.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Profile.Role").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their unique email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Profile.Role").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDAndToken retrieves a user matching both the id and the exact stored
// token value. A miss on either leg surfaces as ErrUserNotFound.
func (repo *userRepository) FindByIDAndToken(ctx context.Context, id uuid.UUID, token string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND token = ?", id, token).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id and token")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, restricted to the allowed column set.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Select(createUserColumns).
		Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate the store-generated timestamps back to the entity.
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the mutable identity fields of an existing user.
// Credentials and token have their own dedicated write paths.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"username":   user.Username,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetToken overwrites the single outstanding one-time token; nil clears it.
func (repo *userRepository) SetToken(ctx context.Context, id uuid.UUID, token *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("token", token)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set user token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ConsumeToken clears the token only where id and token still match, making
// concurrent verifications race-safe: at most one caller observes a consumed row.
func (repo *userRepository) ConsumeToken(ctx context.Context, id uuid.UUID, token string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND token = ?", id, token).
		Update("token", nil)
	if err := result.Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to consume user token")
	}

	return result.RowsAffected > 0, nil
}

// UpdatePassword replaces the stored password hash. The token column is untouched.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user row; the profile row cascades in the store.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindAndCount returns the filtered page and the total count of matching rows.
// The count runs on the filtered query before the window is applied, with
// distinct ids so joined rows never inflate the total.
func (repo *userRepository) FindAndCount(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	// Count and Find each get their own chain: a finisher leaves its built
	// SQL on the shared statement, so reusing one chain would replay the
	// count instead of fetching the page.
	filtered := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.UserModel{})
		if filter.ID != nil {
			query = query.Where("id = ?", *filter.ID)
		}
		if filter.FirstName != "" {
			query = query.Where("first_name ILIKE ?", "%"+filter.FirstName+"%")
		}
		if filter.CreatedAt != "" {
			query = query.Where("CAST(created_at AS TEXT) ILIKE ?", "%"+filter.CreatedAt+"%")
		}

		return query
	}

	var total int64
	if err := filtered().Distinct("id").Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	query := filtered()
	if filter.Bounded() {
		query = query.Limit(*filter.Limit).Offset(*filter.Offset)
	}

	var userModels []*model.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.Password,
		Token:        data.Token,
		Profile:      toProfileDomain(data.Profile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Username:  data.Username,
		Email:     data.Email,
		Password:  data.PasswordHash,
		Token:     data.Token,
	}
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		UserID:    data.UserID,
		RoleID:    data.RoleID,
		Role:      toRoleDomain(data.Role),
		CreatedAt: data.CreatedAt,
	}
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
