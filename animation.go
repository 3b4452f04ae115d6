package cssval

import "strings"

// AnimationConfig holds the shared fields applied to every keyframe
// name an animation builder tracks. Duration and Delay accept a number
// (milliseconds) or a CSS time string; IterationCount accepts a number
// or the keyword "infinite". Nil/empty fields are unset and omitted
// from output.
type AnimationConfig struct {
	Duration       any
	TimingFunction string
	Delay          any
	IterationCount any
	Direction      string
	FillMode       string
	PlayState      string
}

// merge overlays the set fields of o onto c and returns the result.
func (c AnimationConfig) merge(o AnimationConfig) AnimationConfig {
	if o.Duration != nil {
		c.Duration = o.Duration
	}
	if o.TimingFunction != "" {
		c.TimingFunction = o.TimingFunction
	}
	if o.Delay != nil {
		c.Delay = o.Delay
	}
	if o.IterationCount != nil {
		c.IterationCount = o.IterationCount
	}
	if o.Direction != "" {
		c.Direction = o.Direction
	}
	if o.FillMode != "" {
		c.FillMode = o.FillMode
	}
	if o.PlayState != "" {
		c.PlayState = o.PlayState
	}
	return c
}

// builtinAnimationDefaults is the configuration newly constructed
// animation builders start from before any override.
var builtinAnimationDefaults = AnimationConfig{
	Duration:       200,
	TimingFunction: "ease",
}

// animationDefaults is process-wide state. Set it up once at startup;
// concurrent writers are not synchronized.
var animationDefaults = builtinAnimationDefaults

// OverrideAnimationDefaults merges the set fields of cfg into the
// process-wide animation defaults used by NewAnimation.
func OverrideAnimationDefaults(cfg AnimationConfig) {
	animationDefaults = animationDefaults.merge(cfg)
}

// ResetAnimationDefaults restores the built-in animation defaults.
// Test suites that override defaults must call this between cases.
func ResetAnimationDefaults() {
	animationDefaults = builtinAnimationDefaults
}

// Animation builds a CSS animation property value for one or more
// keyframe names sharing a single configuration. Chain methods return a
// new builder; the receiver is never mutated.
type Animation struct {
	keyframes []string
	cfg       AnimationConfig
	composed  []Animation
}

// NewAnimation returns a builder for the given keyframe names,
// configured from the process-wide defaults.
func NewAnimation(keyframes ...string) Animation {
	return Animation{keyframes: keyframes, cfg: animationDefaults}
}

// NewAnimationWith returns a builder with an explicit base
// configuration, bypassing the process-wide defaults.
func NewAnimationWith(cfg AnimationConfig, keyframes ...string) Animation {
	return Animation{keyframes: keyframes, cfg: cfg}
}

func (a Animation) clone() Animation {
	c := a
	c.keyframes = append([]string(nil), a.keyframes...)
	c.composed = append([]Animation(nil), a.composed...)
	return c
}

// Duration sets the animation duration. Numbers coerce to ms.
func (a Animation) Duration(v any) Animation {
	c := a.clone()
	c.cfg.Duration = v
	return c
}

// TimingFunction sets the animation timing function.
func (a Animation) TimingFunction(fn string) Animation {
	c := a.clone()
	c.cfg.TimingFunction = fn
	return c
}

// Delay sets the animation delay. Numbers coerce to ms.
func (a Animation) Delay(v any) Animation {
	c := a.clone()
	c.cfg.Delay = v
	return c
}

// IterationCount sets the iteration count: a number or "infinite".
func (a Animation) IterationCount(v any) Animation {
	c := a.clone()
	c.cfg.IterationCount = v
	return c
}

// Direction sets the animation direction.
func (a Animation) Direction(d string) Animation {
	c := a.clone()
	c.cfg.Direction = d
	return c
}

// FillMode sets the animation fill mode.
func (a Animation) FillMode(m string) Animation {
	c := a.clone()
	c.cfg.FillMode = m
	return c
}

// PlayState sets the animation play state.
func (a Animation) PlayState(s string) Animation {
	c := a.clone()
	c.cfg.PlayState = s
	return c
}

// And composes independently configured builders. Each keeps its own
// configuration in the rendered output.
func (a Animation) And(others ...Animation) Animation {
	c := a.clone()
	c.composed = append(c.composed, others...)
	return c
}

// String renders "keyframe duration timing [delay] [count] [direction]
// [fill] [state]" for each tracked keyframe name, comma-joined,
// followed by the composed builders.
func (a Animation) String() string {
	entry := a.cfg.render()

	parts := make([]string, 0, len(a.keyframes)+len(a.composed))
	for _, kf := range a.keyframes {
		parts = append(parts, strings.Join(append([]string{kf}, entry...), " "))
	}
	for _, o := range a.composed {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, ", ")
}

// render returns the configured fields in output order, skipping unset
// ones.
func (c AnimationConfig) render() []string {
	var out []string
	if c.Duration != nil {
		out = append(out, Ms(c.Duration))
	}
	if c.TimingFunction != "" {
		out = append(out, c.TimingFunction)
	}
	if c.Delay != nil {
		out = append(out, Ms(c.Delay))
	}
	if c.IterationCount != nil {
		out = append(out, number(c.IterationCount))
	}
	if c.Direction != "" {
		out = append(out, c.Direction)
	}
	if c.FillMode != "" {
		out = append(out, c.FillMode)
	}
	if c.PlayState != "" {
		out = append(out, c.PlayState)
	}
	return out
}
