// Package codec holds the line formats used by the text habit store.
package codec

import (
	"strconv"
	"strings"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// CommaSeparated writes name,description,frequency,strength,streak with no escaping.
//
// Fields containing a comma shift every later field on decode. Decode keeps
// only the first three fields, so a reloaded habit starts with an empty log
// and zero streak regardless of the stored statistics.
type CommaSeparated struct{}

// NewCommaSeparated returns the default habit line codec.
func NewCommaSeparated() CommaSeparated {
	return CommaSeparated{}
}

// Encode implements ports.LineCodec.
func (CommaSeparated) Encode(h *domain.Habit) string {
	fields := []string{
		h.Name(),
		h.Description(),
		h.Frequency(),
		FormatStrength(h.Strength()),
		strconv.Itoa(h.Streak()),
	}
	return strings.Join(fields, domain.RecordSeparator)
}

// Decode implements ports.LineCodec.
func (CommaSeparated) Decode(line string) (*domain.Habit, error) {
	parts := strings.Split(line, domain.RecordSeparator)
	if len(parts) < domain.MinRecordFields {
		return nil, &domain.MalformedRecordError{Raw: line, Fields: len(parts)}
	}
	return domain.NewHabit(parts[0], parts[1], parts[2]), nil
}

// FormatStrength renders a strength as a decimal that always has a fractional part (75.0, 66.66666666666667).
func FormatStrength(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var _ ports.LineCodec = CommaSeparated{}
