package coherence

import (
	"fmt"
	"time"
)

// MoodQuadrant groups mood labels by energy and valence.
type MoodQuadrant string

const (
	HighPositive MoodQuadrant = "high-positive"
	LowPositive  MoodQuadrant = "low-positive"
	HighNegative MoodQuadrant = "high-negative"
	LowNegative  MoodQuadrant = "low-negative"
)

// MoodQuadrants lists the 36 supported mood labels by quadrant.
var MoodQuadrants = map[MoodQuadrant][]string{
	HighPositive: {
		"Focused", "Confident", "Energized",
		"Motivated", "Excited", "Passionate",
		"Inspired", "Determined", "Empowered",
	},
	LowPositive: {
		"Calm", "Content", "Peaceful",
		"Relaxed", "Grateful", "Serene",
		"Grounded", "Centered", "Thoughtful",
	},
	HighNegative: {
		"Stressed", "Anxious", "Overwhelmed",
		"Frustrated", "Irritated", "Pressured",
		"Nervous", "Worried", "Restless",
	},
	LowNegative: {
		"Drained", "Tired", "Numb",
		"Disconnected", "Lonely", "Lost",
		"Sad", "Depleted", "Uncertain",
	},
}

// MoodContributions maps each mood label to its CAT contribution vector.
var MoodContributions = map[string]CATDelta{
	// High energy, positive.
	"Focused":    {C: 2, A: 1, T: 0},
	"Confident":  {C: 1, A: 2, T: 1},
	"Energized":  {C: 1, A: 2, T: 0},
	"Motivated":  {C: 1, A: 2, T: 1},
	"Excited":    {C: 0, A: 2, T: 1},
	"Passionate": {C: 0, A: 1, T: 2},
	"Inspired":   {C: 2, A: 1, T: 1},
	"Determined": {C: 1, A: 2, T: 0},
	"Empowered":  {C: 1, A: 2, T: 1},

	// Low energy, positive.
	"Calm":       {C: 1, A: 0, T: 2},
	"Content":    {C: 1, A: 1, T: 2},
	"Peaceful":   {C: 1, A: 0, T: 2},
	"Relaxed":    {C: 0, A: 0, T: 2},
	"Grateful":   {C: 1, A: 0, T: 2},
	"Serene":     {C: 1, A: 0, T: 2},
	"Grounded":   {C: 2, A: 1, T: 1},
	"Centered":   {C: 2, A: 1, T: 1},
	"Thoughtful": {C: 2, A: 0, T: 1},

	// High energy, negative.
	"Stressed":    {C: -1, A: 1, T: -1},
	"Anxious":     {C: -1, A: 0, T: -2},
	"Overwhelmed": {C: -2, A: -1, T: -1},
	"Frustrated":  {C: 0, A: 1, T: -2},
	"Irritated":   {C: 0, A: 1, T: -2},
	"Pressured":   {C: -1, A: 0, T: -1},
	"Nervous":     {C: -1, A: -1, T: -1},
	"Worried":     {C: -1, A: -1, T: -1},
	"Restless":    {C: -1, A: 1, T: -1},

	// Low energy, negative.
	"Drained":      {C: -1, A: -2, T: 0},
	"Tired":        {C: -1, A: -2, T: 0},
	"Numb":         {C: -2, A: -1, T: -1},
	"Disconnected": {C: -1, A: -1, T: -2},
	"Lonely":       {C: 0, A: -1, T: -2},
	"Lost":         {C: -2, A: -2, T: -1},
	"Sad":          {C: 0, A: -1, T: -1},
	"Depleted":     {C: -1, A: -2, T: -1},
	"Uncertain":    {C: -2, A: -1, T: 0},
}

// MoodObservation is one recorded mood check-in. Immutable once recorded.
type MoodObservation struct {
	Label     string
	Timestamp time.Time
	CAT       CATDelta
}

// ResolveMood returns the CAT contribution for a mood label.
func ResolveMood(label string) (CATDelta, error) {
	delta, ok := MoodContributions[label]
	if !ok {
		return CATDelta{}, fmt.Errorf("mood: %w: %s", ErrUnknownMood, label)
	}
	return delta, nil
}

// NewMoodObservation builds an observation with the contribution resolved
// from the label.
func NewMoodObservation(label string, at time.Time) (MoodObservation, error) {
	delta, err := ResolveMood(label)
	if err != nil {
		return MoodObservation{}, err
	}
	return MoodObservation{Label: label, Timestamp: at, CAT: delta}, nil
}
