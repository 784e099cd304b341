package models

// EventKind классифицирует событие тика
type EventKind string

const (
	EventHazardCreated EventKind = "hazard_created"
	EventHazardCleared EventKind = "hazard_cleared"
	EventAlertReceived EventKind = "alert_received"
	EventVisualBraking EventKind = "visual_braking"
	EventStopped       EventKind = "stopped"
	EventChainCrash    EventKind = "chain_crash"
	EventResumed       EventKind = "resumed"
	EventFinished      EventKind = "finished"
)

// Event - заметное событие тика для логгера и голосового оповещения
type Event struct {
	Tick           int       `json:"tick"`
	RoadID         string    `json:"road_id"`
	VehicleID      string    `json:"vehicle_id"`
	Kind           EventKind `json:"kind"`
	Message        string    `json:"message"`
	ShouldAnnounce bool      `json:"should_announce"`
}
