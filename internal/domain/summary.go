package domain

import (
	"math/big"
	"strconv"
)

// Feedback thresholds, in percent.
const (
	GreatThreshold = 80.0
	GoodThreshold  = 50.0
)

// FeedbackTier is one of the three consistency bands.
type FeedbackTier int

const (
	TierKeepGoing FeedbackTier = iota
	TierGood
	TierGreat
)

var tierMessages = map[FeedbackTier]string{
	TierGreat:     "Great job! You're consistently keeping up with your habit.",
	TierGood:      "Good job! You're making progress, but there's room for improvement.",
	TierKeepGoing: "Keep going! Try to be more consistent in completing your habit.",
}

// TierFor maps a strength percentage to its feedback tier.
func TierFor(strength float64) FeedbackTier {
	switch {
	case strength >= GreatThreshold:
		return TierGreat
	case strength >= GoodThreshold:
		return TierGood
	default:
		return TierKeepGoing
	}
}

// Message returns the user-facing feedback text.
func (t FeedbackTier) Message() string {
	return tierMessages[t]
}

func (t FeedbackTier) String() string {
	switch t {
	case TierGreat:
		return "great"
	case TierGood:
		return "good"
	default:
		return "keep-going"
	}
}

// FeedbackFor returns the feedback message for an arbitrary strength value.
func FeedbackFor(strength float64) string {
	return TierFor(strength).Message()
}

// Summary is the read-only report shown by the summary view.
type Summary struct {
	Name        string
	Description string
	Frequency   string
	Strength    float64
	Streak      int
	Feedback    string
}

// StrengthText renders the strength with two decimal places. Ties round up
// from the shortest decimal form, so 3.125 is "3.13".
func (s Summary) StrengthText() string {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(s.Strength, 'f', -1, 64))
	if !ok {
		return strconv.FormatFloat(s.Strength, 'f', 2, 64)
	}
	return r.FloatString(2)
}
