package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/pkg/errs"
)

// MissionRepository keeps missions in the missions table.
type MissionRepository struct {
	q querier
}

func (r *MissionRepository) Save(ctx context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO missions (name, status, all_rockets_count, in_space_count, in_repair_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			status = excluded.status,
			all_rockets_count = excluded.all_rockets_count,
			in_space_count = excluded.in_space_count,
			in_repair_count = excluded.in_repair_count`,
		aggregate.Name().String(),
		aggregate.Status().String(),
		aggregate.AllRocketsCount(),
		aggregate.InSpaceCount(),
		aggregate.InRepairCount(),
	)
	if err != nil {
		return fmt.Errorf("save mission: %w", err)
	}
	return nil
}

func (r *MissionRepository) Get(ctx context.Context, name kernel.Name) (*mission.Mission, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT name, status, all_rockets_count, in_space_count, in_repair_count
		FROM missions WHERE name = ?`, name.String())

	found, err := scanMission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("mission", name.String())
	}
	return found, err
}

// GetAllSorted relies on the default BINARY collation, which compares names
// byte by byte.
func (r *MissionRepository) GetAllSorted(ctx context.Context) ([]*mission.Mission, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT name, status, all_rockets_count, in_space_count, in_repair_count
		FROM missions
		ORDER BY all_rockets_count DESC, name DESC`)
	if err != nil {
		return nil, fmt.Errorf("select missions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	missions := make([]*mission.Mission, 0)
	for rows.Next() {
		found, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, found)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return missions, nil
}

func scanMission(s scanner) (*mission.Mission, error) {
	var (
		rawName, rawStatus string
		counters           mission.Counters
	)
	if err := s.Scan(&rawName, &rawStatus, &counters.AllRockets, &counters.InSpace, &counters.InRepair); err != nil {
		return nil, err
	}

	name, err := kernel.NewName(rawName)
	if err != nil {
		return nil, err
	}
	status, err := mission.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	return mission.RestoreMission(name, status, counters)
}
