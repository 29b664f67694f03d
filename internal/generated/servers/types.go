// Package servers provides primitives to interact with the openapi HTTP API.
//
// The layout follows what oapi-codegen emits for the echo server target:
// models, a ServerInterface, a wrapper that binds parameters and
// RegisterHandlers. openapi.yaml in this directory is the source of truth.
package servers

// Defines values for MissionStatus.
const (
	ENDED      MissionStatus = "ENDED"
	INPROGRESS MissionStatus = "IN_PROGRESS"
	PENDING    MissionStatus = "PENDING"
	SCHEDULED  MissionStatus = "SCHEDULED"
)

// Defines values for RocketStatus.
const (
	INREPAIR RocketStatus = "IN_REPAIR"
	INSPACE  RocketStatus = "IN_SPACE"
	ONGROUND RocketStatus = "ON_GROUND"
)

// AssignmentResult defines model for AssignmentResult.
type AssignmentResult struct {
	Assigned []string        `json:"assigned"`
	Skipped  []SkippedRocket `json:"skipped"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Mission defines model for Mission.
type Mission struct {
	AllRocketsCount int           `json:"allRocketsCount"`
	InRepairCount   int           `json:"inRepairCount"`
	InSpaceCount    int           `json:"inSpaceCount"`
	Name            string        `json:"name"`
	Rockets         []Rocket      `json:"rockets"`
	Status          MissionStatus `json:"status"`
}

// MissionStatus defines model for MissionStatus.
type MissionStatus string

// NewMission defines model for NewMission.
type NewMission struct {
	Name string `json:"name"`
}

// NewRocket defines model for NewRocket.
type NewRocket struct {
	Name string `json:"name"`
}

// Rocket defines model for Rocket.
type Rocket struct {
	Mission *string      `json:"mission,omitempty"`
	Name    string       `json:"name"`
	Status  RocketStatus `json:"status"`
}

// RocketAssignment defines model for RocketAssignment.
type RocketAssignment struct {
	Rockets []string `json:"rockets"`
}

// RocketStatus defines model for RocketStatus.
type RocketStatus string

// RocketStatusChange defines model for RocketStatusChange.
type RocketStatusChange struct {
	Status RocketStatus `json:"status"`
}

// SkippedRocket defines model for SkippedRocket.
type SkippedRocket struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Name defines model for Name.
type Name = string

// CreateMissionJSONRequestBody defines body for CreateMission for application/json ContentType.
type CreateMissionJSONRequestBody = NewMission

// AssignRocketsJSONRequestBody defines body for AssignRockets for application/json ContentType.
type AssignRocketsJSONRequestBody = RocketAssignment

// CreateRocketJSONRequestBody defines body for CreateRocket for application/json ContentType.
type CreateRocketJSONRequestBody = NewRocket

// ChangeRocketStatusJSONRequestBody defines body for ChangeRocketStatus for application/json ContentType.
type ChangeRocketStatusJSONRequestBody = RocketStatusChange
