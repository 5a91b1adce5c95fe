// Package domain defines core entities and value objects for the habit tracker.
//
// This file holds the Habit aggregate: its completion log and the statistics
// derived from it. The domain layer knows nothing about files, terminals or
// databases; persistence formats live behind the ports package.
package domain

// Habit tracks one habit's identity and completion history.
type Habit struct {
	name        string
	description string
	frequency   string
	log         []bool
	streak      int
}

// NewHabit creates a habit with an empty completion log. Inputs are not validated.
func NewHabit(name, description, frequency string) *Habit {
	return &Habit{
		name:        name,
		description: description,
		frequency:   frequency,
	}
}

// Name returns the habit name.
func (h *Habit) Name() string { return h.name }

// Description returns the free-text description.
func (h *Habit) Description() string { return h.description }

// Frequency returns the cadence label (e.g. Daily, Weekly).
func (h *Habit) Frequency() string { return h.frequency }

// Streak returns the number of consecutive most-recent completions.
func (h *Habit) Streak() int { return h.streak }

// Len reports how many completion entries have been recorded.
func (h *Habit) Len() int { return len(h.log) }

// Log returns a copy of the completion log in chronological order.
func (h *Habit) Log() []bool {
	out := make([]bool, len(h.log))
	copy(out, h.log)
	return out
}

// RecordCompletion appends one day's outcome to the log.
func (h *Habit) RecordCompletion(completed bool) {
	h.log = append(h.log, completed)
	if completed {
		h.streak++
		return
	}
	h.streak = 0
}

// Strength returns the percentage of logged days marked completed, or 0 for an empty log.
func (h *Habit) Strength() float64 {
	if len(h.log) == 0 {
		return 0
	}
	completed := 0
	for _, done := range h.log {
		if done {
			completed++
		}
	}
	return float64(completed) * 100.0 / float64(len(h.log))
}

// Tier classifies the current strength.
func (h *Habit) Tier() FeedbackTier {
	return TierFor(h.Strength())
}

// Feedback returns the encouragement message for the current strength.
func (h *Habit) Feedback() string {
	return h.Tier().Message()
}

// Summary projects the habit into a read-only report.
func (h *Habit) Summary() Summary {
	return Summary{
		Name:        h.name,
		Description: h.description,
		Frequency:   h.frequency,
		Strength:    h.Strength(),
		Streak:      h.streak,
		Feedback:    h.Feedback(),
	}
}
