package commands_test

import (
	"errors"
	"testing"

	"spacefleet/internal/core/application/usecases/commands"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinishMissionCommandHandler_Handle_GroundsRockets(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewFinishMissionCommand("Mars")
	require.NoError(t, err)

	active := restoreMission(t, "Mars", mission.Pending, mission.Counters{AllRockets: 2, InSpace: 1, InRepair: 1})
	crew := []*rocket.Rocket{
		restoreRocket(t, "Dragon 1", rocket.InSpace, "Mars"),
		restoreRocket(t, "Dragon 2", rocket.InRepair, "Mars"),
	}

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	grounded := mock.MatchedBy(func(r *rocket.Rocket) bool {
		return r.Status() == rocket.OnGround && !r.IsAssigned()
	})

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RocketRepository").Return(rocketRepo).Once(),
		mockUoW.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, cmd.MissionName()).Return(active, nil).Once(),
		rocketRepo.On("FindByMission", ctx, cmd.MissionName()).Return(crew, nil).Once(),
		rocketRepo.On("Save", ctx, grounded).Return(nil).Twice(),
		missionRepo.On("Save", ctx, mock.MatchedBy(func(m *mission.Mission) bool {
			return m.IsEnded() && m.Counters().IsZero()
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFinishMissionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	rocketRepo.AssertExpectations(t)
	missionRepo.AssertExpectations(t)
}

func TestFinishMissionCommandHandler_Handle_MissionNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewFinishMissionCommand("Nowhere")
	require.NoError(t, err)

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).
		Return(nil, errs.NewObjectNotFoundError("name", "Nowhere")).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFinishMissionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrMissionNotFound)
	rocketRepo.AssertNotCalled(t, "FindByMission", mock.Anything, mock.Anything)
}

func TestFinishMissionCommandHandler_Handle_RocketSaveError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewFinishMissionCommand("Mars")
	require.NoError(t, err)

	expectedError := errors.New("rocket write failed")
	active := restoreMission(t, "Mars", mission.InProgress, mission.Counters{AllRockets: 1, InSpace: 1})
	crew := []*rocket.Rocket{restoreRocket(t, "Dragon 1", rocket.InSpace, "Mars")}

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).Return(active, nil).Once()
	rocketRepo.On("FindByMission", ctx, cmd.MissionName()).Return(crew, nil).Once()
	rocketRepo.On("Save", ctx, mock.AnythingOfType("*rocket.Rocket")).Return(expectedError).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewFinishMissionCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	missionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}
