package models

import "sort"

// Topology - форма дороги
type Topology string

const (
	TopologyLooping Topology = "looping"
	TopologyBounded Topology = "bounded"
)

// RoadState - все машины одной дороги и не более одной активной аварии
type RoadState struct {
	ID           string     `json:"id"`
	Topology     Topology   `json:"topology"`
	Length       float64    `json:"length"`
	AlertChannel bool       `json:"alert_channel"`
	Vehicles     []*Vehicle `json:"vehicles"`
	Hazard       *Hazard    `json:"hazard,omitempty"`
}

// SortVehicles упорядочивает машины от головной (по убыванию позиции), при равенстве по порядку выпуска
func (r *RoadState) SortVehicles() {
	sort.SliceStable(r.Vehicles, func(i, j int) bool {
		if r.Vehicles[i].Position == r.Vehicles[j].Position {
			return r.Vehicles[i].Seq < r.Vehicles[j].Seq
		}
		return r.Vehicles[i].Position > r.Vehicles[j].Position
	})
}

// Vehicle возвращает машину по id или nil
func (r *RoadState) Vehicle(id string) *Vehicle {
	for _, v := range r.Vehicles {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Clone - глубокая копия дороги
func (r *RoadState) Clone() *RoadState {
	out := *r
	out.Vehicles = make([]*Vehicle, len(r.Vehicles))
	for i, v := range r.Vehicles {
		vc := *v
		out.Vehicles[i] = &vc
	}
	if r.Hazard != nil {
		h := *r.Hazard
		out.Hazard = &h
	}
	return &out
}

// CountStatus - число машин в статусе s
func (r *RoadState) CountStatus(s VehicleStatus) int {
	n := 0
	for _, v := range r.Vehicles {
		if v.Status == s {
			n++
		}
	}
	return n
}
