package cssval

import "strings"

// TransitionConfig holds the timing fields shared by every property a
// transition builder tracks. Duration and Delay accept a number
// (milliseconds) or a CSS time string; a nil field is unset.
type TransitionConfig struct {
	Duration       any
	TimingFunction string
	Delay          any
}

// merge overlays the set fields of o onto c and returns the result.
func (c TransitionConfig) merge(o TransitionConfig) TransitionConfig {
	if o.Duration != nil {
		c.Duration = o.Duration
	}
	if o.TimingFunction != "" {
		c.TimingFunction = o.TimingFunction
	}
	if o.Delay != nil {
		c.Delay = o.Delay
	}
	return c
}

// builtinTransitionDefaults is the configuration newly constructed
// transition builders start from before any override.
var builtinTransitionDefaults = TransitionConfig{
	Duration:       200,
	TimingFunction: "ease",
}

// transitionDefaults is process-wide state. Set it up once at startup;
// concurrent writers are not synchronized.
var transitionDefaults = builtinTransitionDefaults

// OverrideTransitionDefaults merges the set fields of cfg into the
// process-wide transition defaults used by NewTransition.
func OverrideTransitionDefaults(cfg TransitionConfig) {
	transitionDefaults = transitionDefaults.merge(cfg)
}

// ResetTransitionDefaults restores the built-in transition defaults.
// Test suites that override defaults must call this between cases.
func ResetTransitionDefaults() {
	transitionDefaults = builtinTransitionDefaults
}

// Transition builds a CSS transition property value for one or more
// target properties sharing a single configuration. Chain methods
// return a new builder; the receiver is never mutated.
type Transition struct {
	props    []string
	cfg      TransitionConfig
	composed []Transition
}

// NewTransition returns a builder for the given target properties,
// configured from the process-wide defaults.
func NewTransition(props ...string) Transition {
	return Transition{props: props, cfg: transitionDefaults}
}

// NewTransitionWith returns a builder with an explicit base
// configuration, bypassing the process-wide defaults.
func NewTransitionWith(cfg TransitionConfig, props ...string) Transition {
	return Transition{props: props, cfg: cfg}
}

// clone deep-copies the builder so chain methods never share slices.
func (t Transition) clone() Transition {
	c := t
	c.props = append([]string(nil), t.props...)
	c.composed = append([]Transition(nil), t.composed...)
	return c
}

// Duration sets the transition duration. Numbers coerce to ms.
func (t Transition) Duration(v any) Transition {
	c := t.clone()
	c.cfg.Duration = v
	return c
}

// TimingFunction sets the transition timing function.
func (t Transition) TimingFunction(fn string) Transition {
	c := t.clone()
	c.cfg.TimingFunction = fn
	return c
}

// Delay sets the transition delay. Numbers coerce to ms.
func (t Transition) Delay(v any) Transition {
	c := t.clone()
	c.cfg.Delay = v
	return c
}

// And composes independently configured builders. Each keeps its own
// configuration in the rendered output.
func (t Transition) And(others ...Transition) Transition {
	c := t.clone()
	c.composed = append(c.composed, others...)
	return c
}

// String renders "property duration timing [delay]" for each tracked
// property, comma-joined, followed by the composed builders.
func (t Transition) String() string {
	entry := t.cfg.render()

	parts := make([]string, 0, len(t.props)+len(t.composed))
	for _, p := range t.props {
		parts = append(parts, strings.Join(append([]string{p}, entry...), " "))
	}
	for _, o := range t.composed {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, ", ")
}

// render returns the configured fields in output order, skipping unset
// ones.
func (c TransitionConfig) render() []string {
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
	return out
}
