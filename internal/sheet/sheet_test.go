package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssval"
)

func TestValueDefBuild(t *testing.T) {
	tests := []struct {
		name string
		def  ValueDef
		want string
	}{
		{
			name: "raw passes through",
			def:  ValueDef{Raw: "var(--accent)"},
			want: "var(--accent)",
		},
		{
			name: "calc literal",
			def:  ValueDef{Calc: &CalcDef{Args: []any{"100%"}}},
			want: "calc(100%)",
		},
		{
			name: "calc subtract",
			def: ValueDef{Calc: &CalcDef{
				Fn:   "subtract",
				Args: []any{"100%", "32px"},
			}},
			want: "calc(100% - 32px)",
		},
		{
			name: "calc nested divide under subtract",
			def: ValueDef{Calc: &CalcDef{
				Fn: "subtract",
				Args: []any{
					map[string]any{"fn": "divide", "args": []any{"100%", 3}},
					"16px",
				},
			}},
			want: "calc(100% / 3 - 16px)",
		},
		{
			name: "calc additive nested in multiply is parenthesized",
			def: ValueDef{Calc: &CalcDef{
				Fn: "multiply",
				Args: []any{
					map[string]any{"fn": "add", "args": []any{1, 2}},
					3,
				},
			}},
			want: "calc((1 + 2) * 3)",
		},
		{
			name: "calc min",
			def: ValueDef{Calc: &CalcDef{
				Fn:   "min",
				Args: []any{"10vw", "120px"},
			}},
			want: "min(10vw, 120px)",
		},
		{
			name: "calc clamp",
			def: ValueDef{Calc: &CalcDef{
				Fn:   "clamp",
				Args: []any{"1rem", "2.5vw", "3rem"},
			}},
			want: "clamp(1rem, 2.5vw, 3rem)",
		},
		{
			name: "calc negate",
			def: ValueDef{Calc: &CalcDef{
				Fn:   "negate",
				Args: []any{"var(--gap)"},
			}},
			want: "calc(-1 * var(--gap))",
		},
		{
			name: "transform chain",
			def: ValueDef{Transform: []TransformOp{
				{Fn: "translateY", Args: []any{-4}},
				{Fn: "scale", Args: []any{1.02}},
			}},
			want: "translateY(-4px) scale(1.02)",
		},
		{
			name: "transition",
			def: ValueDef{Transition: &TransitionDef{
				Properties: []string{"opacity", "transform"},
				Duration:   300,
				Timing:     "ease-out",
			}},
			want: "opacity 300ms ease-out, transform 300ms ease-out",
		},
		{
			name: "animation",
			def: ValueDef{Animation: &AnimationDef{
				Keyframes: []string{"spin"},
				Duration:  1200,
				Timing:    "linear",
				Iteration: "infinite",
			}},
			want: "spin 1200ms linear infinite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cssval.ResetTransitionDefaults()
			cssval.ResetAnimationDefaults()

			got, err := tt.def.Build()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValueDefBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		def  ValueDef
	}{
		{
			name: "empty definition",
			def:  ValueDef{},
		},
		{
			name: "unknown calc function",
			def:  ValueDef{Calc: &CalcDef{Fn: "frobnicate", Args: []any{1}}},
		},
		{
			name: "clamp arity",
			def:  ValueDef{Calc: &CalcDef{Fn: "clamp", Args: []any{1, 2}}},
		},
		{
			name: "unknown transform function",
			def:  ValueDef{Transform: []TransformOp{{Fn: "warp", Args: []any{1}}}},
		},
		{
			name: "matrix arity",
			def:  ValueDef{Transform: []TransformOp{{Fn: "matrix", Args: []any{1, 2}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			require.Error(t, err)
		})
	}
}

func TestLoadSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.cssval.yaml")
	content := `
selector: ":root"
values:
  card-lift:
    transform:
      - fn: translateY
        args: [-4]
      - fn: scale
        args: [1.02]
  col-width:
    calc:
      fn: subtract
      args:
        - fn: divide
          args: ["100%", 3]
        - "16px"
  fade:
    transition:
      properties: [opacity]
      duration: 300
      timing: ease-out
  accent:
    raw: "var(--brand)"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":root", s.Selector)
	assert.Equal(t, path, s.Source)
	assert.Len(t, s.Values, 4)
	assert.Equal(t, []string{"accent", "card-lift", "col-width", "fade"}, s.Names())

	cssval.ResetTransitionDefaults()
	values, err := s.Render()
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.Equal(t, "var(--brand)", values[0].Value)
	assert.Equal(t, "translateY(-4px) scale(1.02)", values[1].Value)
	assert.Equal(t, "calc(100% / 3 - 16px)", values[2].Value)
	assert.Equal(t, "opacity 300ms ease-out", values[3].Value)
}

func TestLoadSheetMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
