package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MoodType is a closed set of mood labels
type MoodType string

const (
	MoodVeryHappy  MoodType = "very_happy"
	MoodHappy      MoodType = "happy"
	MoodNeutral    MoodType = "neutral"
	MoodSad        MoodType = "sad"
	MoodVerySad    MoodType = "very_sad"
	MoodAnxious    MoodType = "anxious"
	MoodStressed   MoodType = "stressed"
	MoodExcited    MoodType = "excited"
	MoodCalm       MoodType = "calm"
	MoodAngry      MoodType = "angry"
	MoodGrateful   MoodType = "grateful"
	MoodFrustrated MoodType = "frustrated"
)

// AllMoods lists every valid mood label
var AllMoods = []MoodType{
	MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad,
	MoodAnxious, MoodStressed, MoodExcited, MoodCalm, MoodAngry,
	MoodGrateful, MoodFrustrated,
}

// PositiveMoods is the fixed set used for the positivity ratio
var PositiveMoods = map[MoodType]bool{
	MoodVeryHappy: true,
	MoodHappy:     true,
	MoodExcited:   true,
	MoodGrateful:  true,
	MoodCalm:      true,
}

// Validate rejects mood labels outside the closed set
func (m MoodType) Validate() error {
	for _, known := range AllMoods {
		if m == known {
			return nil
		}
	}
	return fmt.Errorf("unknown mood: %q", string(m))
}

// MoodEntry is a single mood observation tied to a journal entry
type MoodEntry struct {
	ID                    uuid.UUID `json:"id" db:"id"`
	JournalEntryID        uuid.UUID `json:"journal_entry_id" db:"journal_entry_id"`
	UserID                uuid.UUID `json:"user_id" db:"user_id"`
	Mood                  MoodType  `json:"mood" db:"mood"`
	Intensity             float64   `json:"intensity" db:"intensity"`
	EnergyLevel           *float64  `json:"energy_level,omitempty" db:"energy_level"`
	StressLevel           *float64  `json:"stress_level,omitempty" db:"stress_level"`
	Notes                 *string   `json:"notes,omitempty" db:"notes"`
	DetectedAutomatically bool      `json:"detected_automatically" db:"detected_automatically"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
}

// Validate enforces the 1-10 scales before persistence
func (m *MoodEntry) Validate() error {
	if err := m.Mood.Validate(); err != nil {
		return err
	}
	if m.Intensity < 1 || m.Intensity > 10 {
		return fmt.Errorf("intensity %.2f outside [1,10]", m.Intensity)
	}
	if m.EnergyLevel != nil && (*m.EnergyLevel < 1 || *m.EnergyLevel > 10) {
		return fmt.Errorf("energy_level %.2f outside [1,10]", *m.EnergyLevel)
	}
	if m.StressLevel != nil && (*m.StressLevel < 1 || *m.StressLevel > 10) {
		return fmt.Errorf("stress_level %.2f outside [1,10]", *m.StressLevel)
	}
	return nil
}

// MoodBucket is one row of the dashboard mood distribution
type MoodBucket struct {
	Mood         MoodType `json:"mood" db:"mood"`
	Count        int      `json:"count" db:"count"`
	AvgIntensity float64  `json:"avg_intensity" db:"avg_intensity"`
}

// MoodTrendPoint is one observation on the mood trend timeline
type MoodTrendPoint struct {
	Date        string   `json:"date"`
	Mood        MoodType `json:"mood"`
	Intensity   float64  `json:"intensity"`
	EnergyLevel *float64 `json:"energy_level,omitempty"`
	StressLevel *float64 `json:"stress_level,omitempty"`
}

// Clamp bounds a value into [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPtr bounds an optional value into [lo, hi], passing nil through
func ClampPtr(v *float64, lo, hi float64) *float64 {
	if v == nil {
		return nil
	}
	c := Clamp(*v, lo, hi)
	return &c
}
