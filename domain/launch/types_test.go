package launch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		input    string
		expected Outcome
		hasError bool
	}{
		{"1", OutcomeSuccess, false},
		{" 0 ", OutcomeFailure, false},
		{"1.0", OutcomeSuccess, false},
		{"0.0", OutcomeFailure, false},
		{"2", 0, true},
		{"yes", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOutcome(tt.input)
		if tt.hasError {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "Success", OutcomeSuccess.Label())
	assert.Equal(t, "Epic Fail", OutcomeFailure.Label())
	assert.True(t, OutcomeSuccess.IsSuccess())
	assert.False(t, OutcomeFailure.IsSuccess())
}

func TestSiteFilter(t *testing.T) {
	assert.True(t, AllSites.IsAll())
	assert.True(t, AllSites.Matches("anything"))

	f := SiteFilter("KSC LC-39A")
	assert.False(t, f.IsAll())
	assert.True(t, f.Matches("KSC LC-39A"))
	assert.False(t, f.Matches("CCAFS LC-40"))

	// Lower-case "all" is a site name, not the sentinel.
	assert.False(t, SiteFilter("all").IsAll())
}

func TestPayloadRange(t *testing.T) {
	r := NewPayloadRange(500, 600)
	assert.True(t, r.Contains(500))
	assert.True(t, r.Contains(600))
	assert.True(t, r.Contains(550))
	assert.False(t, r.Contains(499.9))
	assert.False(t, r.Contains(600.1))

	inverted := NewPayloadRange(600, 500)
	assert.True(t, inverted.IsEmpty())
	assert.False(t, inverted.Contains(550))

	nan := NewPayloadRange(math.NaN(), 100)
	assert.True(t, nan.IsEmpty())
	assert.False(t, nan.Contains(50))

	point := NewPayloadRange(500, 500)
	assert.False(t, point.IsEmpty())
	assert.True(t, point.Contains(500))
}

func TestFormatRangeValue(t *testing.T) {
	assert.Equal(t, "2500", FormatRangeValue(2500))
	assert.Equal(t, "2500.5", FormatRangeValue(2500.5))
}
