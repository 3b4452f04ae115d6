// Package cssval provides chainable builders that generate syntactically
// valid CSS value strings: math expressions, transforms, transitions,
// animations, and unit helpers.
//
// Builders are immutable values: every chain call returns a new builder
// and a terminal String() renders the accumulated structure. The package
// only assembles text; it never validates values against the CSS
// grammar and never evaluates expressions; that is the engine's job.
//
// # Math expressions
//
// Calc and the named math functions build an expression tree that
// renders with minimal parenthesization:
//
//	cssval.Calc(1).Add(2).Add(3).String()        // "calc(1 + 2 + 3)"
//	cssval.Calc(1).Add(2).Multiply(3).String()   // "calc((1 + 2) * 3)"
//	cssval.Min(1, 2, 3).Add(4).String()          // "calc(min(1, 2, 3) + 4)"
//
// # Transforms
//
// Each CSS transform function has a chain method. Lengths coerce to px,
// angles to deg, and non-numeric strings pass through untouched:
//
//	cssval.NewTransform().TranslateX(10).Rotate(45).String()
//	// "translateX(10px) rotate(45deg)"
//
// # Transitions and animations
//
// Transition and animation builders track one or more target names plus
// a shared configuration that defaults from a process-wide record:
//
//	cssval.NewTransition("opacity").Duration(300).String()
//	// "opacity 300ms ease"
//
// Override the process-wide defaults with OverrideTransitionDefaults /
// OverrideAnimationDefaults, and reset them between independent test
// scenarios with the matching Reset functions.
//
// # CLI tool
//
// cmd/cssval renders declarative YAML value sheets to CSS custom
// properties. Install with:
//
//	go install github.com/yacobolo/cssval/cmd/cssval@latest
package cssval
