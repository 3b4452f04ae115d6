package cssval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionDefaults(t *testing.T) {
	ResetTransitionDefaults()

	got := NewTransition("opacity").String()
	require.Equal(t, "opacity 200ms ease", got)
}

func TestTransitionChainOverrides(t *testing.T) {
	ResetTransitionDefaults()

	tests := []struct {
		name string
		tr   Transition
		want string
	}{
		{
			name: "numeric duration coerces ms",
			tr:   NewTransition("opacity").Duration(300),
			want: "opacity 300ms ease",
		},
		{
			name: "string duration with unit passes through",
			tr:   NewTransition("opacity").Duration("1.5s"),
			want: "opacity 1.5s ease",
		},
		{
			name: "numeric string duration gets ms",
			tr:   NewTransition("opacity").Duration("250"),
			want: "opacity 250ms ease",
		},
		{
			name: "negative string duration is kept literally",
			tr:   NewTransition("opacity").Duration("-5"),
			want: "opacity -5ms ease",
		},
		{
			name: "timing function",
			tr:   NewTransition("transform").TimingFunction("ease-in-out"),
			want: "transform 200ms ease-in-out",
		},
		{
			name: "delay appended after timing",
			tr:   NewTransition("opacity").Delay(100),
			want: "opacity 200ms ease 100ms",
		},
		{
			name: "multiple properties share one config",
			tr:   NewTransition("opacity", "transform").Duration(400),
			want: "opacity 400ms ease, transform 400ms ease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.tr.String())
		})
	}
}

func TestTransitionAndComposesIndependentConfigs(t *testing.T) {
	ResetTransitionDefaults()

	fade := NewTransition("opacity").Duration(150)
	slide := NewTransition("transform").Duration(400).TimingFunction("ease-out")

	got := fade.And(slide).String()
	require.Equal(t, "opacity 150ms ease, transform 400ms ease-out", got)
}

func TestOverrideTransitionDefaults(t *testing.T) {
	t.Cleanup(ResetTransitionDefaults)

	OverrideTransitionDefaults(TransitionConfig{Duration: 500})
	assert.Equal(t, "opacity 500ms ease", NewTransition("opacity").String())

	// A second partial override leaves other fields in place.
	OverrideTransitionDefaults(TransitionConfig{TimingFunction: "linear"})
	assert.Equal(t, "opacity 500ms linear", NewTransition("opacity").String())

	ResetTransitionDefaults()
	assert.Equal(t, "opacity 200ms ease", NewTransition("opacity").String())
}

func TestNewTransitionWithBypassesDefaults(t *testing.T) {
	t.Cleanup(ResetTransitionDefaults)
	OverrideTransitionDefaults(TransitionConfig{Duration: 999})

	cfg := TransitionConfig{Duration: 100, TimingFunction: "step-end"}
	got := NewTransitionWith(cfg, "color").String()
	require.Equal(t, "color 100ms step-end", got)
}

func TestTransitionImmutability(t *testing.T) {
	ResetTransitionDefaults()

	base := NewTransition("opacity")
	slow := base.Duration(900)

	assert.Equal(t, "opacity 200ms ease", base.String())
	assert.Equal(t, "opacity 900ms ease", slow.String())
}

func TestTransitionDefaultsSnapshotAtConstruction(t *testing.T) {
	t.Cleanup(ResetTransitionDefaults)

	before := NewTransition("opacity")
	OverrideTransitionDefaults(TransitionConfig{Duration: 700})
	after := NewTransition("opacity")

	// Builders read the defaults at construction time, not at render time.
	assert.Equal(t, "opacity 200ms ease", before.String())
	assert.Equal(t, "opacity 700ms ease", after.String())
}
