package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/habits/internal/domain"
)

func TestEncodeScenario(t *testing.T) {
	h := domain.NewHabit("Run", "30min jog", "Daily")
	for _, done := range []bool{true, true, false, true} {
		h.RecordCompletion(done)
	}

	assert.Equal(t, "Run,30min jog,Daily,75.0,1", NewCommaSeparated().Encode(h))
}

func TestEncodeEmptyHabit(t *testing.T) {
	h := domain.NewHabit("", "", "")
	assert.Equal(t, ",,,0.0,0", NewCommaSeparated().Encode(h))
}

func TestFormatStrength(t *testing.T) {
	cases := map[float64]string{
		0:           "0.0",
		100:         "100.0",
		75:          "75.0",
		100.0 / 3.0: "33.333333333333336",
		200.0 / 3.0: "66.66666666666667",
		12.5:        "12.5",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatStrength(in), "FormatStrength(%v)", in)
	}
}

func TestRoundTripKeepsIdentityDropsHistory(t *testing.T) {
	c := NewCommaSeparated()
	h := domain.NewHabit("Meditate", "10 minutes", "Weekly")
	h.RecordCompletion(true)
	h.RecordCompletion(true)

	got, err := c.Decode(c.Encode(h))
	require.NoError(t, err)

	assert.Equal(t, h.Name(), got.Name())
	assert.Equal(t, h.Description(), got.Description())
	assert.Equal(t, h.Frequency(), got.Frequency())

	// Stored strength and streak are not restored.
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, 0, got.Streak())
	assert.Equal(t, 0.0, got.Strength())
	assert.NotEqual(t, h.Streak(), got.Streak())
}

func TestDecodeIgnoresTrailingFields(t *testing.T) {
	got, err := NewCommaSeparated().Decode("Read,Two chapters,Daily,87.5,7")
	require.NoError(t, err)
	assert.Equal(t, "Read", got.Name())
	assert.Equal(t, "Two chapters", got.Description())
	assert.Equal(t, "Daily", got.Frequency())
	assert.Equal(t, 0, got.Streak())
}

func TestDecodeThreeFields(t *testing.T) {
	got, err := NewCommaSeparated().Decode("a,b,c")
	require.NoError(t, err)
	assert.Equal(t, "c", got.Frequency())
}

func TestDecodeMalformed(t *testing.T) {
	for _, line := range []string{"X,Y", "only-name", ""} {
		got, err := NewCommaSeparated().Decode(line)
		assert.Nil(t, got)
		require.Error(t, err, "line %q", line)
		assert.True(t, errors.Is(err, domain.ErrMalformedRecord))

		var malformed *domain.MalformedRecordError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, line, malformed.Raw)
	}
}

// Commas are not escaped: a name containing one shifts the remaining fields.
func TestCommaInNameIsNotPreserved(t *testing.T) {
	c := NewCommaSeparated()
	h := domain.NewHabit("Read, write", "journal", "Daily")

	got, err := c.Decode(c.Encode(h))
	require.NoError(t, err)
	assert.Equal(t, "Read", got.Name())
	assert.Equal(t, " write", got.Description())
	assert.Equal(t, "journal", got.Frequency())
}
