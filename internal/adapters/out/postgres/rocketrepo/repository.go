package rocketrepo

import (
	"context"
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRocketRepository struct {
	db         *gorm.DB
	lockOnRead bool
}

// NewGormRocketRepository creates a repository over db. With lockOnRead set,
// Get takes a row lock that is held until the surrounding transaction ends.
func NewGormRocketRepository(db *gorm.DB, lockOnRead bool) *GormRocketRepository {
	return &GormRocketRepository{
		db:         db,
		lockOnRead: lockOnRead,
	}
}

func (r *GormRocketRepository) Save(ctx context.Context, aggregate *rocket.Rocket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "mission_name"}),
		}).
		Create(&dto).Error
}

func (r *GormRocketRepository) Get(ctx context.Context, name kernel.Name) (*rocket.Rocket, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if r.lockOnRead {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RocketDTO
	if err := query.First(&dto, "name = ?", name.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rocket", name.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRocketRepository) FindByMission(ctx context.Context, missionName kernel.Name) ([]*rocket.Rocket, error) {
	var dtos []RocketDTO
	if err := r.db.WithContext(ctx).
		Where("mission_name = ?", missionName.String()).
		Order("position").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rockets := make([]*rocket.Rocket, 0, len(dtos))
	for _, dto := range dtos {
		found, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rockets = append(rockets, found)
	}

	return rockets, nil
}
