package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"
)

// RocketRepository keeps rockets in the rockets table. Rows keep their rowid
// on update, so rowid order is insertion order.
type RocketRepository struct {
	q querier
}

func (r *RocketRepository) Save(ctx context.Context, aggregate *rocket.Rocket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var missionName sql.NullString
	if m := aggregate.Mission(); m != nil {
		missionName = sql.NullString{String: m.String(), Valid: true}
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO rockets (name, status, mission_name) VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			status = excluded.status,
			mission_name = excluded.mission_name`,
		aggregate.Name().String(), aggregate.Status().String(), missionName,
	)
	if err != nil {
		return fmt.Errorf("save rocket: %w", err)
	}
	return nil
}

func (r *RocketRepository) Get(ctx context.Context, name kernel.Name) (*rocket.Rocket, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT name, status, mission_name FROM rockets WHERE name = ?`, name.String())

	found, err := scanRocket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("rocket", name.String())
	}
	return found, err
}

func (r *RocketRepository) FindByMission(ctx context.Context, missionName kernel.Name) ([]*rocket.Rocket, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT name, status, mission_name FROM rockets WHERE mission_name = ? ORDER BY rowid`,
		missionName.String())
	if err != nil {
		return nil, fmt.Errorf("select rockets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	rockets := make([]*rocket.Rocket, 0)
	for rows.Next() {
		found, err := scanRocket(rows)
		if err != nil {
			return nil, err
		}
		rockets = append(rockets, found)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rockets, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRocket(s scanner) (*rocket.Rocket, error) {
	var (
		rawName, rawStatus string
		rawMission         sql.NullString
	)
	if err := s.Scan(&rawName, &rawStatus, &rawMission); err != nil {
		return nil, err
	}

	name, err := kernel.NewName(rawName)
	if err != nil {
		return nil, err
	}
	status, err := rocket.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var missionName *kernel.Name
	if rawMission.Valid {
		m, mErr := kernel.NewName(rawMission.String)
		if mErr != nil {
			return nil, mErr
		}
		missionName = &m
	}

	return rocket.RestoreRocket(name, status, missionName)
}
