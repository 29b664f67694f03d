package missionrepo

import (
	"context"
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortOrder compares names byte-wise so the order does not depend on the
// database collation.
const sortOrder = `all_rockets_count DESC, name COLLATE "C" DESC`

type GormMissionRepository struct {
	db         *gorm.DB
	lockOnRead bool
}

// NewGormMissionRepository creates a repository over db. With lockOnRead set,
// Get takes a row lock that is held until the surrounding transaction ends.
func NewGormMissionRepository(db *gorm.DB, lockOnRead bool) *GormMissionRepository {
	return &GormMissionRepository{
		db:         db,
		lockOnRead: lockOnRead,
	}
}

func (r *GormMissionRepository) Save(ctx context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

func (r *GormMissionRepository) Get(ctx context.Context, name kernel.Name) (*mission.Mission, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if r.lockOnRead {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto MissionDTO
	if err := query.First(&dto, "name = ?", name.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mission", name.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormMissionRepository) GetAllSorted(ctx context.Context) ([]*mission.Mission, error) {
	var dtos []MissionDTO
	if err := r.db.WithContext(ctx).Order(sortOrder).Find(&dtos).Error; err != nil {
		return nil, err
	}

	missions := make([]*mission.Mission, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}

	return missions, nil
}
