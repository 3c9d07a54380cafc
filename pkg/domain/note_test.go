package domain_test

import (
	"testing"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_Validate(t *testing.T) {
	tests := []struct {
		name    string
		note    domain.Note
		wantErr string
	}{
		{
			name: "valid tone",
			note: domain.NewNote(domain.C5, 3, 150*time.Millisecond),
		},
		{
			name: "rest",
			note: domain.Rest(300 * time.Millisecond),
		},
		{
			name: "zero duration is valid",
			note: domain.NewNote(domain.A4, 3, 0),
		},
		{
			name:    "negative frequency",
			note:    domain.Note{Frequency: -440, Volume: 3, Duration: time.Second},
			wantErr: "negative frequency",
		},
		{
			name:    "negative duration",
			note:    domain.Note{Frequency: 440, Volume: 3, Duration: -time.Second},
			wantErr: "negative duration",
		},
		{
			name:    "volume too loud",
			note:    domain.Note{Frequency: 440, Volume: 5, Duration: time.Second},
			wantErr: "volume out of range",
		},
		{
			name:    "volume negative",
			note:    domain.Note{Frequency: 440, Volume: -1, Duration: time.Second},
			wantErr: "volume out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNote_IsRest(t *testing.T) {
	assert.True(t, domain.Rest(time.Second).IsRest())
	assert.True(t, domain.NewNote(domain.S, 0, time.Second).IsRest())
	assert.False(t, domain.NewNote(domain.C4, 3, time.Second).IsRest())
}

func TestTune_Validate_ReportsIndex(t *testing.T) {
	tune := domain.Tune{
		domain.NewNote(domain.C5, 3, 100*time.Millisecond),
		{Frequency: 440, Volume: 3, Duration: -time.Millisecond},
	}

	err := tune.Validate()
	require.Error(t, err)

	var inv *domain.InvalidNoteError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, 1, inv.Index)
}

func TestTune_Duration(t *testing.T) {
	tune := domain.Tune{
		domain.NewNote(domain.C5, 3, 150*time.Millisecond),
		domain.Rest(50 * time.Millisecond),
		domain.NewNote(domain.E5, 3, 250*time.Millisecond),
	}
	assert.Equal(t, 450*time.Millisecond, tune.Duration())
	assert.Equal(t, time.Duration(0), domain.Tune{}.Duration())
}

func TestTune_Scaled(t *testing.T) {
	tune := domain.Tune{domain.NewNote(domain.A4, 2, time.Second)}

	scaled := tune.Scaled(2.0, 0.5)

	require.Len(t, scaled, 1)
	assert.Equal(t, 880, scaled[0].Frequency)
	assert.Equal(t, 500*time.Millisecond, scaled[0].Duration)
	assert.Equal(t, 2, scaled[0].Volume)
	// original untouched
	assert.Equal(t, 440, tune[0].Frequency)
}

func TestLookupPitch(t *testing.T) {
	p, ok := domain.LookupPitch("C5")
	require.True(t, ok)
	assert.Equal(t, domain.C5, p)
	assert.Equal(t, 523, int(p))

	_, ok = domain.LookupPitch("H9")
	assert.False(t, ok)
}
