package pkg

const (
	INF_WEIGHT float64 = 1e15

	// every traversed leg past the first adds exactly one intermediate
	// stop, so the layover term contributes one unit per edge.
	LAYOVER_UNIT = 1.0

	// preference sliders on the client are bounded to this range. the
	// engine itself accepts any non-negative weights.
	MIN_PREFERENCE_WEIGHT = 1.0
	MAX_PREFERENCE_WEIGHT = 10.0

	DEFAULT_ALTERNATIVES      = 5
	MAX_ALTERNATIVES          = 20
	DEFAULT_NEAREST_RADIUS_KM = 100.0
)

const (
	DEBUG = false
)
