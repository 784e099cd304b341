// Package geometry - расчеты дистанций и видимости для движка и отрисовки дороги
package geometry

import "math"

// NoLeader - дистанция, когда впереди никого нет
var NoLeader = math.Inf(1)

// VisibilityDistance - дальность видимости при тумане fogLevel (0 - ясно,
// 100 - ничего не видно). Результат ограничен [0, baseRange]
func VisibilityDistance(fogLevel, baseRange float64) float64 {
	if baseRange <= 0 {
		return 0
	}
	d := baseRange * (100 - fogLevel) / 100
	return math.Max(0, math.Min(baseRange, d))
}

// WrappedDistance - расстояние вперед от a до b по кольцу длины length, в [0, length)
func WrappedDistance(a, b, length float64) float64 {
	if length <= 0 {
		return 0
	}
	d := math.Mod(b-a, length)
	if d < 0 {
		d += length
	}
	if d >= length {
		// округление чуть ниже нуля
		d = 0
	}
	return d
}

// BoundedDistance - дистанция до ведущей на ограниченной дороге или NoLeader,
// если ведущая еще не выехала
func BoundedDistance(follower, leader float64) float64 {
	if leader < 0 {
		return NoLeader
	}
	return leader - follower
}

// Wrap приводит позицию к [0, length)
func Wrap(pos, length float64) float64 {
	return WrappedDistance(0, pos, length)
}
