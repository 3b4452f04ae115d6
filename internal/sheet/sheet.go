// Package sheet loads declarative YAML value sheets and renders them to
// CSS custom-property blocks through the cssval builders. Sheets are
// structured trees that map directly onto builder calls; no CSS text is
// ever parsed back into structure.
package sheet

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/cssval"
)

// Sheet is one value-sheet file: a selector plus named value definitions.
type Sheet struct {
	// Selector is the rule the rendered custom properties are emitted
	// under. Empty means the document-level selector decides.
	Selector string `koanf:"selector"`
	// Values maps custom-property names (without the -- prefix) to
	// their definitions.
	Values map[string]ValueDef `koanf:"values"`
	// Source is the file the sheet was loaded from, for reporting.
	Source string `koanf:"-"`
}

// ValueDef describes how one value is built. Exactly one field should
// be set; when several are, the first in declaration order wins.
type ValueDef struct {
	Raw        string         `koanf:"raw"`
	Calc       *CalcDef       `koanf:"calc"`
	Transform  []TransformOp  `koanf:"transform"`
	Transition *TransitionDef `koanf:"transition"`
	Animation  *AnimationDef  `koanf:"animation"`
}

// CalcDef is a node of a structured math expression. Args hold scalars
// (numbers, raw CSS strings) or nested nodes as plain maps with "fn"
// and "args" keys.
type CalcDef struct {
	Fn   string `koanf:"fn"`
	Args []any  `koanf:"args"`
}

// TransformOp names one transform function and its arguments.
type TransformOp struct {
	Fn   string `koanf:"fn"`
	Args []any  `koanf:"args"`
}

// TransitionDef configures a transition builder.
type TransitionDef struct {
	Properties []string `koanf:"properties"`
	Duration   any      `koanf:"duration"`
	Timing     string   `koanf:"timing"`
	Delay      any      `koanf:"delay"`
}

// AnimationDef configures an animation builder.
type AnimationDef struct {
	Keyframes []string `koanf:"keyframes"`
	Duration  any      `koanf:"duration"`
	Timing    string   `koanf:"timing"`
	Delay     any      `koanf:"delay"`
	Iteration any      `koanf:"iteration"`
	Direction string   `koanf:"direction"`
	Fill      string   `koanf:"fill"`
	Play      string   `koanf:"play"`
}

// Load reads and decodes a single sheet file.
func Load(path string) (*Sheet, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading sheet %s: %w", path, err)
	}

	var s Sheet
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("decoding sheet %s: %w", path, err)
	}
	s.Source = path
	return &s, nil
}

// LoadAll loads every sheet in path order.
func LoadAll(paths []string) ([]*Sheet, error) {
	sheets := make([]*Sheet, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// Names returns the sheet's value names sorted for deterministic output.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.Values))
	for name := range s.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build renders one value definition to its CSS text.
func (d ValueDef) Build() (string, error) {
	switch {
	case d.Raw != "":
		return d.Raw, nil
	case d.Calc != nil:
		e, err := buildCalc(*d.Calc)
		if err != nil {
			return "", err
		}
		return e.String(), nil
	case len(d.Transform) > 0:
		return buildTransform(d.Transform)
	case d.Transition != nil:
		return buildTransition(*d.Transition), nil
	case d.Animation != nil:
		return buildAnimation(*d.Animation), nil
	default:
		return "", fmt.Errorf("value definition is empty")
	}
}

// buildCalc translates a structured expression node into builder calls.
func buildCalc(def CalcDef) (*cssval.Expr, error) {
	args, err := buildCalcArgs(def.Args)
	if err != nil {
		return nil, err
	}

	switch def.Fn {
	case "", "calc":
		if len(args) != 1 {
			return nil, fmt.Errorf("calc node takes one argument, got %d", len(args))
		}
		return cssval.Calc(args[0]), nil
	case "add", "subtract", "multiply", "divide":
		if len(args) < 2 {
			return nil, fmt.Errorf("%s node needs at least two arguments", def.Fn)
		}
		recv := asExpr(args[0])
		rest := args[1:]
		switch def.Fn {
		case "add":
			return recv.Add(rest...), nil
		case "subtract":
			return recv.Subtract(rest...), nil
		case "multiply":
			return recv.Multiply(rest...), nil
		default:
			return recv.Divide(rest...), nil
		}
	case "negate":
		if len(args) != 1 {
			return nil, fmt.Errorf("negate node takes one argument, got %d", len(args))
		}
		return asExpr(args[0]).Negate(), nil
	case "min":
		return cssval.Min(args...), nil
	case "max":
		return cssval.Max(args...), nil
	case "clamp":
		if len(args) != 3 {
			return nil, fmt.Errorf("clamp node takes three arguments, got %d", len(args))
		}
		return cssval.Clamp(args[0], args[1], args[2]), nil
	case "round":
		return cssval.Round(args...), nil
	case "pow":
		if len(args) != 2 {
			return nil, fmt.Errorf("pow node takes two arguments, got %d", len(args))
		}
		return cssval.Pow(args[0], args[1]), nil
	case "atan2":
		if len(args) != 2 {
			return nil, fmt.Errorf("atan2 node takes two arguments, got %d", len(args))
		}
		return cssval.Atan2(args[0], args[1]), nil
	case "log":
		if len(args) == 0 {
			return nil, fmt.Errorf("log node needs an argument")
		}
		return cssval.Log(args[0], args[1:]...), nil
	case "sqrt", "abs", "exp", "sin", "cos", "tan", "asin", "acos", "atan", "ceil", "floor":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s node takes one argument, got %d", def.Fn, len(args))
		}
		return buildUnary(def.Fn, args[0]), nil
	default:
		return nil, fmt.Errorf("unknown calc function %q", def.Fn)
	}
}

func buildUnary(fn string, arg any) *cssval.Expr {
	switch fn {
	case "sqrt":
		return cssval.Sqrt(arg)
	case "abs":
		return cssval.Abs(arg)
	case "exp":
		return cssval.Exp(arg)
	case "sin":
		return cssval.Sin(arg)
	case "cos":
		return cssval.Cos(arg)
	case "tan":
		return cssval.Tan(arg)
	case "asin":
		return cssval.Asin(arg)
	case "acos":
		return cssval.Acos(arg)
	case "atan":
		return cssval.Atan(arg)
	case "ceil":
		return cssval.Ceil(arg)
	default:
		return cssval.Floor(arg)
	}
}

// buildCalcArgs resolves nested nodes; scalars pass through to the
// builders, which own all coercion rules.
func buildCalcArgs(raw []any) ([]any, error) {
	out := make([]any, 0, len(raw))
	for _, a := range raw {
		if m, ok := a.(map[string]any); ok {
			nested, err := buildCalc(decodeCalcNode(m))
			if err != nil {
				return nil, err
			}
			out = append(out, nested)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// decodeCalcNode reads a nested {fn, args} map produced by the YAML
// decoder.
func decodeCalcNode(m map[string]any) CalcDef {
	var def CalcDef
	if fn, ok := m["fn"].(string); ok {
		def.Fn = fn
	}
	if args, ok := m["args"].([]any); ok {
		def.Args = args
	}
	return def
}

// asExpr lifts a scalar to a calc() node so it can serve as a chain
// receiver. Existing expressions pass through.
func asExpr(v any) *cssval.Expr {
	if e, ok := v.(*cssval.Expr); ok {
		return e
	}
	return cssval.Calc(v)
}

// buildTransform applies each op to a transform builder in order.
func buildTransform(ops []TransformOp) (string, error) {
	t := cssval.NewTransform()
	for _, op := range ops {
		var err error
		t, err = applyTransformOp(t, op)
		if err != nil {
			return "", err
		}
	}
	return t.String(), nil
}

func applyTransformOp(t cssval.Transform, op TransformOp) (cssval.Transform, error) {
	need := func(n int) error {
		if len(op.Args) != n {
			return fmt.Errorf("%s takes %d arguments, got %d", op.Fn, n, len(op.Args))
		}
		return nil
	}

	switch op.Fn {
	case "translate":
		if len(op.Args) < 1 || len(op.Args) > 2 {
			return t, fmt.Errorf("translate takes one or two arguments, got %d", len(op.Args))
		}
		return t.Translate(op.Args[0], op.Args[1:]...), nil
	case "translateX":
		return t.TranslateX(first(op)), need(1)
	case "translateY":
		return t.TranslateY(first(op)), need(1)
	case "translateZ":
		return t.TranslateZ(first(op)), need(1)
	case "translate3d":
		if err := need(3); err != nil {
			return t, err
		}
		return t.Translate3d(op.Args[0], op.Args[1], op.Args[2]), nil
	case "scale":
		if len(op.Args) < 1 || len(op.Args) > 2 {
			return t, fmt.Errorf("scale takes one or two arguments, got %d", len(op.Args))
		}
		return t.Scale(op.Args[0], op.Args[1:]...), nil
	case "scaleX":
		return t.ScaleX(first(op)), need(1)
	case "scaleY":
		return t.ScaleY(first(op)), need(1)
	case "scaleZ":
		return t.ScaleZ(first(op)), need(1)
	case "scale3d":
		if err := need(3); err != nil {
			return t, err
		}
		return t.Scale3d(op.Args[0], op.Args[1], op.Args[2]), nil
	case "rotate":
		return t.Rotate(first(op)), need(1)
	case "rotateX":
		return t.RotateX(first(op)), need(1)
	case "rotateY":
		return t.RotateY(first(op)), need(1)
	case "rotateZ":
		return t.RotateZ(first(op)), need(1)
	case "rotate3d":
		if err := need(4); err != nil {
			return t, err
		}
		return t.Rotate3d(op.Args[0], op.Args[1], op.Args[2], op.Args[3]), nil
	case "skew":
		if len(op.Args) < 1 || len(op.Args) > 2 {
			return t, fmt.Errorf("skew takes one or two arguments, got %d", len(op.Args))
		}
		return t.Skew(op.Args[0], op.Args[1:]...), nil
	case "skewX":
		return t.SkewX(first(op)), need(1)
	case "skewY":
		return t.SkewY(first(op)), need(1)
	case "perspective":
		return t.Perspective(first(op)), need(1)
	case "matrix":
		if err := need(6); err != nil {
			return t, err
		}
		a := op.Args
		return t.Matrix(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	case "matrix3d":
		if err := need(16); err != nil {
			return t, err
		}
		return t.Matrix3d(op.Args...), nil
	default:
		return t, fmt.Errorf("unknown transform function %q", op.Fn)
	}
}

// first returns the first argument or nil; arity errors are reported by
// the caller's need check.
func first(op TransformOp) any {
	if len(op.Args) == 0 {
		return nil
	}
	return op.Args[0]
}

// buildTransition maps a definition onto the transition builder,
// starting from the process-wide defaults.
func buildTransition(def TransitionDef) string {
	tr := cssval.NewTransition(def.Properties...)
	if def.Duration != nil {
		tr = tr.Duration(def.Duration)
	}
	if def.Timing != "" {
		tr = tr.TimingFunction(def.Timing)
	}
	if def.Delay != nil {
		tr = tr.Delay(def.Delay)
	}
	return tr.String()
}

// buildAnimation maps a definition onto the animation builder, starting
// from the process-wide defaults.
func buildAnimation(def AnimationDef) string {
	an := cssval.NewAnimation(def.Keyframes...)
	if def.Duration != nil {
		an = an.Duration(def.Duration)
	}
	if def.Timing != "" {
		an = an.TimingFunction(def.Timing)
	}
	if def.Delay != nil {
		an = an.Delay(def.Delay)
	}
	if def.Iteration != nil {
		an = an.IterationCount(def.Iteration)
	}
	if def.Direction != "" {
		an = an.Direction(def.Direction)
	}
	if def.Fill != "" {
		an = an.FillMode(def.Fill)
	}
	if def.Play != "" {
		an = an.PlayState(def.Play)
	}
	return an.String()
}
