package rocketrepo

import (
	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
)

type RocketDTO struct {
	Name        string  `gorm:"type:varchar(255);primaryKey"`
	Status      string  `gorm:"type:varchar(16);not null"`
	MissionName *string `gorm:"type:varchar(255);index"`
	Position    int64   `gorm:"type:bigserial;<-:false"`
}

func (RocketDTO) TableName() string {
	return "rockets"
}

func fromDomain(aggregate *rocket.Rocket) RocketDTO {
	dto := RocketDTO{
		Name:   aggregate.Name().String(),
		Status: aggregate.Status().String(),
	}
	if m := aggregate.Mission(); m != nil {
		name := m.String()
		dto.MissionName = &name
	}
	return dto
}

func toDomain(dto RocketDTO) (*rocket.Rocket, error) {
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	status, err := rocket.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var missionName *kernel.Name
	if dto.MissionName != nil {
		m, mErr := kernel.NewName(*dto.MissionName)
		if mErr != nil {
			return nil, mErr
		}
		missionName = &m
	}

	return rocket.RestoreRocket(name, status, missionName)
}
