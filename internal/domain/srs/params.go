package srs

// Params defines all configurable parameters for the scheduling algorithm.
type Params struct {
	// BaseIntervalSeconds is the interval assigned on a forget verdict and
	// the interval new cards start from. 300 seconds (5 minutes) by default.
	BaseIntervalSeconds int

	// GrowthFactor multiplies the current interval on a remember verdict.
	GrowthFactor int

	// MasteryThreshold is the consecutive-remember count at which a card
	// is forced into the mastered status.
	MasteryThreshold int
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance.
type ParamsConfig struct {
	BaseIntervalSeconds int
	GrowthFactor        int
	MasteryThreshold    int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		BaseIntervalSeconds: 300,
		GrowthFactor:        2,
		MasteryThreshold:    20,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero-valued fields fall back to the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.BaseIntervalSeconds > 0 {
		params.BaseIntervalSeconds = config.BaseIntervalSeconds
	}
	if config.GrowthFactor > 0 {
		params.GrowthFactor = config.GrowthFactor
	}
	if config.MasteryThreshold > 0 {
		params.MasteryThreshold = config.MasteryThreshold
	}

	return params
}
