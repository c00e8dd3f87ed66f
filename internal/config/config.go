// Package config provides YAML-based balance tuning for the simulation,
// with embedded defaults matching the shipped game numbers.
package config

// Balance contains every tunable number of the simulation that is not
// part of the static domain tables.
type Balance struct {
	Scoring   ScoringTuning   `yaml:"scoring"`
	Events    EventTuning     `yaml:"events"`
	Publisher PublisherTuning `yaml:"publisher"`
	Revival   RevivalTuning   `yaml:"revival"`
	Life      LifeTuning      `yaml:"life"`
}

// ScoringTuning shapes the premiere quality formulas.
type ScoringTuning struct {
	LuckMin          int     `yaml:"luck_min"`           // inclusive
	LuckMax          int     `yaml:"luck_max"`           // inclusive
	BaseQualityCap   int     `yaml:"base_quality_cap"`   // pre-bonus ceiling
	SoftCapThreshold float64 `yaml:"soft_cap_threshold"` // raw totals above this are compressed
	SoftCapFactor    float64 `yaml:"soft_cap_factor"`
}

// EventTuning controls random narrative events.
type EventTuning struct {
	WeeklyChance float64 `yaml:"weekly_chance"`
}

// PublisherTuning controls royalty income and popularity decay.
type PublisherTuning struct {
	DecayFloor    float64 `yaml:"decay_floor"` // minimum popularity lost per week
	RevivalChance float64 `yaml:"revival_chance"`
}

// RevivalTuning is the price of accepting a revival offer.
type RevivalTuning struct {
	Cost            int `yaml:"cost"`
	InspirationCost int `yaml:"inspiration_cost"`
}

// LifeTuning controls passive recovery, taste drift, and mortality.
type LifeTuning struct {
	HealthRecovery    int     `yaml:"health_recovery"`
	TrendShiftChance  float64 `yaml:"trend_shift_chance"`
	IntensityStep     int     `yaml:"intensity_step"`
	IntensityCap      int     `yaml:"intensity_cap"`
	OldAgeYear        int     `yaml:"old_age_year"`
	OldAgeDeathChance float64 `yaml:"old_age_death_chance"`
}

// DefaultBalance returns the shipped balance values.
func DefaultBalance() Balance {
	return Balance{
		Scoring: ScoringTuning{
			LuckMin:          -10,
			LuckMax:          8,
			BaseQualityCap:   75,
			SoftCapThreshold: 85,
			SoftCapFactor:    0.5,
		},
		Events: EventTuning{
			WeeklyChance: 0.20,
		},
		Publisher: PublisherTuning{
			DecayFloor:    0.3,
			RevivalChance: 0.03,
		},
		Revival: RevivalTuning{
			Cost:            50,
			InspirationCost: 20,
		},
		Life: LifeTuning{
			HealthRecovery:    5,
			TrendShiftChance:  0.5,
			IntensityStep:     10,
			IntensityCap:      80,
			OldAgeYear:        1870,
			OldAgeDeathChance: 0.005,
		},
	}
}
