package models

// VehicleStatus - состояние водителя/автомобиля на дороге
type VehicleStatus string

const (
	StatusNormal        VehicleStatus = "normal"
	StatusBrakingAlert  VehicleStatus = "braking_alert"
	StatusBrakingVisual VehicleStatus = "braking_visual"
	StatusStopped       VehicleStatus = "stopped"
	StatusCrashed       VehicleStatus = "crashed"
	StatusFinished      VehicleStatus = "finished"
)

// IsBraking - торможение по оповещению или по зрению
func (s VehicleStatus) IsBraking() bool {
	return s == StatusBrakingAlert || s == StatusBrakingVisual
}

// IsTerminal - из статуса нет переходов
func (s VehicleStatus) IsTerminal() bool {
	return s == StatusCrashed || s == StatusFinished
}

// Valid - известный статус
func (s VehicleStatus) Valid() bool {
	switch s {
	case StatusNormal, StatusBrakingAlert, StatusBrakingVisual, StatusStopped, StatusCrashed, StatusFinished:
		return true
	}
	return false
}

// Vehicle - одна машина на дороге
type Vehicle struct {
	ID           string        `json:"id"`
	Seq          int           `json:"seq"` // порядок появления, 0 - головная машина
	Position     float64       `json:"position"`
	Speed        float64       `json:"speed"`
	Status       VehicleStatus `json:"status"`
	AlertMessage string        `json:"alert_message,omitempty"`
}
