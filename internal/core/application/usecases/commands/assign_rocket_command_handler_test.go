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

func TestAssignRocketCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Red Dragon", "Mars")
	require.NoError(t, err)

	grounded := restoreRocket(t, "Red Dragon", rocket.OnGround, "")
	scheduled := restoreMission(t, "Mars", mission.Scheduled, mission.Counters{})

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RocketRepository").Return(rocketRepo).Once(),
		mockUoW.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, cmd.MissionName()).Return(scheduled, nil).Once(),
		rocketRepo.On("Get", ctx, cmd.RocketName()).Return(grounded, nil).Once(),
		rocketRepo.On("Save", ctx, mock.MatchedBy(func(r *rocket.Rocket) bool {
			return r.Status() == rocket.InSpace && r.BelongsTo(cmd.MissionName())
		})).Return(nil).Once(),
		missionRepo.On("Save", ctx, mock.MatchedBy(func(m *mission.Mission) bool {
			return m.Status() == mission.InProgress &&
				m.Counters() == mission.Counters{AllRockets: 1, InSpace: 1}
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	rocketRepo.AssertExpectations(t)
	missionRepo.AssertExpectations(t)
}

func TestAssignRocketCommandHandler_Handle_RocketInRepairMakesMissionPending(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Dragon 2", "Luna")
	require.NoError(t, err)

	repairing := restoreRocket(t, "Dragon 2", rocket.InRepair, "")
	scheduled := restoreMission(t, "Luna", mission.Scheduled, mission.Counters{})

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).Return(scheduled, nil).Once()
	rocketRepo.On("Get", ctx, cmd.RocketName()).Return(repairing, nil).Once()
	rocketRepo.On("Save", ctx, mock.MatchedBy(func(r *rocket.Rocket) bool {
		return r.Status() == rocket.InRepair && r.BelongsTo(cmd.MissionName())
	})).Return(nil).Once()
	missionRepo.On("Save", ctx, mock.MatchedBy(func(m *mission.Mission) bool {
		return m.Status() == mission.Pending &&
			m.Counters() == mission.Counters{AllRockets: 1, InRepair: 1}
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	rocketRepo.AssertExpectations(t)
	missionRepo.AssertExpectations(t)
}

func TestAssignRocketCommandHandler_Handle_MissionNotFoundIsCheckedFirst(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Ghost", "Nowhere")
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

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrMissionNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, commands.ErrRocketNotFound)
	rocketRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRocketCommandHandler_Handle_RocketNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Ghost", "Mars")
	require.NoError(t, err)

	scheduled := restoreMission(t, "Mars", mission.Scheduled, mission.Counters{})

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).Return(scheduled, nil).Once()
	rocketRepo.On("Get", ctx, cmd.RocketName()).
		Return(nil, errs.NewObjectNotFoundError("name", "Ghost")).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRocketNotFound)
	missionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRocketCommandHandler_Handle_EndedMission(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Dragon 1", "Apollo")
	require.NoError(t, err)

	assigned := restoreRocket(t, "Dragon 1", rocket.InSpace, "Mars")
	ended := restoreMission(t, "Apollo", mission.Ended, mission.Counters{})

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).Return(ended, nil).Once()
	rocketRepo.On("Get", ctx, cmd.RocketName()).Return(assigned, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, mission.ErrCannotAssignToEndedMission)
	assert.NotErrorIs(t, err, rocket.ErrRocketAlreadyAssigned)
	rocketRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	missionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAssignRocketCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Dragon 1", "Mars")
	require.NoError(t, err)

	assigned := restoreRocket(t, "Dragon 1", rocket.InSpace, "Mars")
	active := restoreMission(t, "Mars", mission.InProgress, mission.Counters{AllRockets: 1, InSpace: 1})

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).Return(active, nil).Once()
	rocketRepo.On("Get", ctx, cmd.RocketName()).Return(assigned, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, rocket.ErrRocketAlreadyAssigned)
	rocketRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	missionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAssignRocketCommandHandler_Handle_MissionSaveError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignRocketCommand("Red Dragon", "Mars")
	require.NoError(t, err)

	expectedError := errors.New("mission write failed")
	grounded := restoreRocket(t, "Red Dragon", rocket.OnGround, "")
	scheduled := restoreMission(t, "Mars", mission.Scheduled, mission.Counters{})

	rocketRepo := new(MockRocketRepository)
	missionRepo := new(MockMissionRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RocketRepository").Return(rocketRepo).Once()
	mockUoW.On("MissionRepository").Return(missionRepo).Once()
	missionRepo.On("Get", ctx, cmd.MissionName()).Return(scheduled, nil).Once()
	rocketRepo.On("Get", ctx, cmd.RocketName()).Return(grounded, nil).Once()
	rocketRepo.On("Save", ctx, mock.AnythingOfType("*rocket.Rocket")).Return(nil).Once()
	missionRepo.On("Save", ctx, mock.AnythingOfType("*mission.Mission")).Return(expectedError).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignRocketCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
}
