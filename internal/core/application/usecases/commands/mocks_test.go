package commands_test

import (
	"context"

	"spacefleet/internal/core/application/usecases/commands"
	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockRocketRepository struct {
	mock.Mock
}

func (m *MockRocketRepository) Save(ctx context.Context, aggregate *rocket.Rocket) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRocketRepository) Get(ctx context.Context, name kernel.Name) (*rocket.Rocket, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*rocket.Rocket)
	return r, args.Error(1)
}

func (m *MockRocketRepository) FindByMission(ctx context.Context, name kernel.Name) ([]*rocket.Rocket, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]*rocket.Rocket), args.Error(1)
}

type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) Save(ctx context.Context, aggregate *mission.Mission) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMissionRepository) Get(ctx context.Context, name kernel.Name) (*mission.Mission, error) {
	args := m.Called(ctx, name)
	found, _ := args.Get(0).(*mission.Mission)
	return found, args.Error(1)
}

func (m *MockMissionRepository) GetAllSorted(ctx context.Context) ([]*mission.Mission, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*mission.Mission), args.Error(1)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RocketRepository() ports.RocketRepository {
	args := m.Called()
	return args.Get(0).(ports.RocketRepository)
}

func (m *MockUoW) MissionRepository() ports.MissionRepository {
	args := m.Called()
	return args.Get(0).(ports.MissionRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRocketUoWFactory struct {
	mock.Mock
}

func (m *MockRocketUoWFactory) Create() commands.RocketUoW {
	args := m.Called()
	return args.Get(0).(commands.RocketUoW)
}

type MockMissionUoWFactory struct {
	mock.Mock
}

func (m *MockMissionUoWFactory) Create() commands.MissionUoW {
	args := m.Called()
	return args.Get(0).(commands.MissionUoW)
}
