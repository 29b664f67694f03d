package missionrepo

import (
	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
)

type MissionDTO struct {
	Name            string `gorm:"type:varchar(255);primaryKey"`
	Status          string `gorm:"type:varchar(16);not null"`
	AllRocketsCount int    `gorm:"type:int;not null"`
	InSpaceCount    int    `gorm:"type:int;not null"`
	InRepairCount   int    `gorm:"type:int;not null"`
}

func (MissionDTO) TableName() string {
	return "missions"
}

func fromDomain(aggregate *mission.Mission) MissionDTO {
	return MissionDTO{
		Name:            aggregate.Name().String(),
		Status:          aggregate.Status().String(),
		AllRocketsCount: aggregate.AllRocketsCount(),
		InSpaceCount:    aggregate.InSpaceCount(),
		InRepairCount:   aggregate.InRepairCount(),
	}
}

func toDomain(dto MissionDTO) (*mission.Mission, error) {
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	status, err := mission.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return mission.RestoreMission(name, status, mission.Counters{
		AllRockets: dto.AllRocketsCount,
		InSpace:    dto.InSpaceCount,
		InRepair:   dto.InRepairCount,
	})
}
