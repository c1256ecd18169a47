package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmoraes/tj-feed/internal/model"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token string
		want  model.Duration
	}{
		{"30min", 30},
		{"+30min", 30},
		{"1min", 1},
		{"90min", 90},
		{"1h", 60},
		{"0.5h", 30},
		{"+0.50h", 30},
		{"7.5h", 450},
		{".25h", 15},
		{"0.33h", 20},
	}
	for _, tt := range tests {
		got, err := model.ParseDuration(tt.token)
		require.NoError(t, err, "ParseDuration(%q)", tt.token)
		assert.Equal(t, tt.want, got, "ParseDuration(%q)", tt.token)
	}
}

func TestParseDurationMalformed(t *testing.T) {
	tokens := []string{
		"",
		"30",
		"min",
		"h",
		"abc",
		"30m",
		"30 min",
		"-30min",
		"-0.5h",
		"0min",
		"0h",
		"0.0h",
		"30.5min",
		"1,5h",
	}
	for _, token := range tokens {
		_, err := model.ParseDuration(token)
		require.Error(t, err, "ParseDuration(%q)", token)
		assert.ErrorIs(t, err, model.ErrMalformedDuration, "ParseDuration(%q)", token)
	}
}

func TestDurationFormat(t *testing.T) {
	tests := []struct {
		d          model.Duration
		useMinutes bool
		want       string
	}{
		{30, true, "+30min"},
		{30, false, "+0.50h"},
		{450, false, "+7.50h"},
		{450, true, "+450min"},
		{60, false, "+1.00h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Format(tt.useMinutes))
	}
}

func TestDurationFormatRoundTrip(t *testing.T) {
	for _, d := range []model.Duration{1, 15, 30, 45, 60, 90, 450, 480} {
		for _, useMinutes := range []bool{true, false} {
			parsed, err := model.ParseDuration(d.Format(useMinutes))
			require.NoError(t, err)
			assert.Equal(t, d, parsed, "round trip of %d minutes (useMinutes=%t)", d.Minutes(), useMinutes)
		}
	}
}
