package engine

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid engine configuration")
	ErrInconsistentState = errors.New("inconsistent road state")
	ErrNoRandomSource    = errors.New("random source unavailable")
	ErrHazardActive      = errors.New("road already has an active hazard")
	ErrNotEligible       = errors.New("vehicle cannot crash in its current state")
	// ErrSpawnSkipped не фатальна: тик выполнен целиком, пропущена только проверка аварии
	ErrSpawnSkipped = errors.New("hazard spawn check skipped")
)
