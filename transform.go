package cssval

import "strings"

// Transform builds a CSS transform property value as an ordered list of
// transform-function fragments. The zero value is ready to use; every
// chain method returns a new Transform and never mutates the receiver.
type Transform struct {
	fns []string
}

// NewTransform returns an empty transform builder.
func NewTransform() Transform {
	return Transform{}
}

// with returns a copy of the builder with one more rendered fragment.
func (t Transform) with(name string, args ...string) Transform {
	fns := make([]string, len(t.fns), len(t.fns)+1)
	copy(fns, t.fns)
	return Transform{fns: append(fns, joinArgs(name, args))}
}

// lengths coerces a list of length arguments to px.
func lengths(vs []any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = Px(v)
	}
	return out
}

// numbers coerces a list of unitless arguments.
func numbers(vs []any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = number(v)
	}
	return out
}

// Matrix appends matrix(a, b, c, d, tx, ty). Matrix cells are unitless.
func (t Transform) Matrix(a, b, c, d, tx, ty any) Transform {
	return t.with("matrix", numbers([]any{a, b, c, d, tx, ty})...)
}

// Matrix3d appends matrix3d(...) with the 16 values supplied in
// column-major order.
func (t Transform) Matrix3d(vs ...any) Transform {
	return t.with("matrix3d", numbers(vs)...)
}

// Translate appends translate(x) or translate(x, y). Lengths coerce to px.
func (t Transform) Translate(x any, y ...any) Transform {
	return t.with("translate", lengths(append([]any{x}, y...))...)
}

func (t Transform) TranslateX(x any) Transform { return t.with("translateX", Px(x)) }
func (t Transform) TranslateY(y any) Transform { return t.with("translateY", Px(y)) }
func (t Transform) TranslateZ(z any) Transform { return t.with("translateZ", Px(z)) }

// Translate3d appends translate3d(x, y, z).
func (t Transform) Translate3d(x, y, z any) Transform {
	return t.with("translate3d", lengths([]any{x, y, z})...)
}

// Scale appends scale(x) or scale(x, y). Scale factors are unitless.
func (t Transform) Scale(x any, y ...any) Transform {
	return t.with("scale", numbers(append([]any{x}, y...))...)
}

func (t Transform) ScaleX(x any) Transform { return t.with("scaleX", number(x)) }
func (t Transform) ScaleY(y any) Transform { return t.with("scaleY", number(y)) }
func (t Transform) ScaleZ(z any) Transform { return t.with("scaleZ", number(z)) }

// Scale3d appends scale3d(x, y, z).
func (t Transform) Scale3d(x, y, z any) Transform {
	return t.with("scale3d", numbers([]any{x, y, z})...)
}

// Rotate appends rotate(angle). Angles coerce to deg.
func (t Transform) Rotate(angle any) Transform { return t.with("rotate", Deg(angle)) }

func (t Transform) RotateX(angle any) Transform { return t.with("rotateX", Deg(angle)) }
func (t Transform) RotateY(angle any) Transform { return t.with("rotateY", Deg(angle)) }
func (t Transform) RotateZ(angle any) Transform { return t.with("rotateZ", Deg(angle)) }

// Rotate3d appends rotate3d(x, y, z, angle). The axis vector is
// unitless, the angle coerces to deg.
func (t Transform) Rotate3d(x, y, z, angle any) Transform {
	return t.with("rotate3d", number(x), number(y), number(z), Deg(angle))
}

// Skew appends skew(x) or skew(x, y). Angles coerce to deg.
func (t Transform) Skew(x any, y ...any) Transform {
	args := make([]string, 0, 2)
	args = append(args, Deg(x))
	for _, v := range y {
		args = append(args, Deg(v))
	}
	return t.with("skew", args...)
}

func (t Transform) SkewX(angle any) Transform { return t.with("skewX", Deg(angle)) }
func (t Transform) SkewY(angle any) Transform { return t.with("skewY", Deg(angle)) }

// Perspective appends perspective(d). The distance coerces to px.
func (t Transform) Perspective(d any) Transform { return t.with("perspective", Px(d)) }

// String joins the accumulated fragments with single spaces.
func (t Transform) String() string {
	return strings.Join(t.fns, " ")
}
