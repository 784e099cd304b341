package models

// Hazard - место аварии, от которого рассылается предупреждение ATOA
type Hazard struct {
	OriginVehicleID string  `json:"origin_vehicle_id,omitempty"`
	Position        float64 `json:"position"`
	CreatedAt       int     `json:"created_at"` // тик создания
}
