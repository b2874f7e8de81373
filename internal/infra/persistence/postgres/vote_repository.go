package postgres

import (
	"context"

	"quorum/internal/domain/entity"
	"quorum/internal/domain/repository"
	"quorum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// voteRepository implements the domain.VoteRepository interface using GORM.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

// FindAndCount returns the filtered page of votes and the total matching count.
func (repo *voteRepository) FindAndCount(ctx context.Context, filter repository.VoteFilter) ([]*entity.Vote, int64, error) {
	// Separate chains per finisher; a chain that ran Count keeps the count
	// SQL on its statement and must not be reused for the page query.
	filtered := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.VoteModel{})
		if filter.UserID != nil {
			query = query.Where("user_id = ?", *filter.UserID)
		}

		return query
	}

	var total int64
	if err := filtered().Distinct("id").Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count votes")
	}

	query := filtered()
	if filter.Bounded() {
		query = query.Limit(*filter.Limit).Offset(*filter.Offset)
	}

	var voteModels []*model.VoteModel
	if err := query.Find(&voteModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list votes")
	}

	votes := make([]*entity.Vote, 0, len(voteModels))
	for _, voteM := range voteModels {
		votes = append(votes, toVoteDomain(voteM))
	}

	return votes, total, nil
}

// toVoteDomain converts a GORM VoteModel to a domain Vote entity.
func toVoteDomain(data *model.VoteModel) *entity.Vote {
	if data == nil {
		return nil
	}

	return &entity.Vote{
		ID:        data.ID,
		UserID:    data.UserID,
		CityID:    data.CityID,
		CreatedAt: data.CreatedAt,
	}
}
