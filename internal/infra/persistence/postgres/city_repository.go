package postgres

import (
	"context"

	"quorum/internal/domain/entity"
	"quorum/internal/domain/repository"
	"quorum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cityRepository implements the domain.CityRepository interface using GORM.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

// FindAndCount returns the filtered page of cities and the total matching count.
func (repo *cityRepository) FindAndCount(ctx context.Context, filter repository.CityFilter) ([]*entity.City, int64, error) {
	// Separate chains per finisher; a chain that ran Count keeps the count
	// SQL on its statement and must not be reused for the page query.
	filtered := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.CityModel{})
		if filter.ID != nil {
			query = query.Where("id = ?", *filter.ID)
		}
		if filter.Name != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
		}

		return query
	}

	var total int64
	if err := filtered().Distinct("id").Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cities")
	}

	query := filtered()
	if filter.Bounded() {
		query = query.Limit(*filter.Limit).Offset(*filter.Offset)
	}

	var cityModels []*model.CityModel
	if err := query.Find(&cityModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, total, nil
}

// toCityDomain converts a GORM CityModel to a domain City entity.
func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
