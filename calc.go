package cssval

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// fnCalc is the generic arithmetic wrapper. Nodes built by the
// arithmetic methods always carry this name; named math functions
// (min, sin, pow, ...) carry their own identifier instead.
const fnCalc = "calc"

// Arithmetic operators recognized by the renderer.
const (
	opAdd      = "+"
	opSubtract = "-"
	opMultiply = "*"
	opDivide   = "/"
)

// Expr is an immutable node of a CSS math expression. Every chain
// method returns a new node; the receiver is never modified. Operands
// are stored as already-rendered text, so a node never aliases live
// children.
type Expr struct {
	fn       string   // CSS function name wrapping the operands
	op       string   // "+", "-", "*", "/"; empty for function-call nodes
	operands []string // rendered operand texts, in supplied order
}

// operandKind tags the closed set of value kinds the builder accepts.
type operandKind int

const (
	operandNumber operandKind = iota
	operandText
	operandExpr
)

// operand is the normalized form of a value supplied to a constructor:
// a number, a raw CSS string, or another expression node.
type operand struct {
	kind operandKind
	num  float64
	text string
	expr *Expr
}

// toOperand normalizes an arbitrary input into the tagged union the
// coercion rules dispatch on. Unknown types fall back to their fmt
// rendering and are treated as raw text.
func toOperand(v any) operand {
	switch x := v.(type) {
	case *Expr:
		return operand{kind: operandExpr, expr: x}
	case string:
		return operand{kind: operandText, text: x}
	case int:
		return operand{kind: operandNumber, num: float64(x)}
	case int64:
		return operand{kind: operandNumber, num: float64(x)}
	case float64:
		return operand{kind: operandNumber, num: x}
	case float32:
		return operand{kind: operandNumber, num: float64(x)}
	default:
		return operand{kind: operandText, text: fmt.Sprint(v)}
	}
}

func (e *Expr) additive() bool       { return e.op == opAdd || e.op == opSubtract }
func (e *Expr) multiplicative() bool { return e.op == opMultiply || e.op == opDivide }

// namedFunction reports whether the node is a named math-function call
// rather than a generic calc() wrapper.
func (e *Expr) namedFunction() bool { return e.fn != fnCalc }

// coerce renders a supplied operand as text in the context of the node
// under construction. The rule order matters and must not be changed:
//
//  1. An additive sub-expression used inside a multiplicative node is
//     parenthesized; otherwise flattening would change its meaning.
//  2. If either side of the pairing is a named function, the operand is
//     rendered with its wrapping call: arguments to CSS math functions
//     must be complete values, not bare arithmetic fragments.
//  3. Any other expression contributes its bare operand list, which is
//     what lets same-operator chains flatten into one calc().
//  4. Numbers and raw strings render as-is.
func (e *Expr) coerce(v any) string {
	o := toOperand(v)
	if o.kind == operandNumber {
		return formatNumber(o.num)
	}
	if o.kind == operandText {
		return o.text
	}

	sub := o.expr
	switch {
	case e.multiplicative() && sub.additive():
		return "(" + sub.build() + ")"
	case e.namedFunction() || sub.namedFunction():
		return sub.String()
	default:
		return sub.build()
	}
}

// arith constructs an arithmetic node with the receiver as first operand.
func (e *Expr) arith(op string, vs []any) *Expr {
	n := &Expr{fn: fnCalc, op: op}
	n.operands = make([]string, 0, len(vs)+1)
	n.operands = append(n.operands, n.coerce(e))
	for _, v := range vs {
		n.operands = append(n.operands, n.coerce(v))
	}
	return n
}

// fncall constructs a named-function node with the receiver as first
// argument.
func (e *Expr) fncall(name string, vs []any) *Expr {
	n := &Expr{fn: name}
	n.operands = make([]string, 0, len(vs)+1)
	n.operands = append(n.operands, n.coerce(e))
	for _, v := range vs {
		n.operands = append(n.operands, n.coerce(v))
	}
	return n
}

// freeCall constructs a named-function node from free-standing arguments.
func freeCall(name string, vs []any) *Expr {
	n := &Expr{fn: name}
	n.operands = make([]string, 0, len(vs))
	for _, v := range vs {
		n.operands = append(n.operands, n.coerce(v))
	}
	return n
}

// Calc wraps a number, raw CSS string, or expression as a new calc()
// node with a single operand and no operator.
func Calc(v any) *Expr {
	n := &Expr{fn: fnCalc}
	n.operands = []string{n.coerce(v)}
	return n
}

// Add returns a new node summing the receiver and the given operands.
func (e *Expr) Add(vs ...any) *Expr { return e.arith(opAdd, vs) }

// Subtract returns a new node subtracting the given operands from the
// receiver, left to right.
func (e *Expr) Subtract(vs ...any) *Expr { return e.arith(opSubtract, vs) }

// Multiply returns a new node multiplying the receiver by the given
// operands.
func (e *Expr) Multiply(vs ...any) *Expr { return e.arith(opMultiply, vs) }

// Divide returns a new node dividing the receiver by the given
// operands, left to right.
func (e *Expr) Divide(vs ...any) *Expr { return e.arith(opDivide, vs) }

// Negate is shorthand for multiplying the receiver by -1.
func (e *Expr) Negate() *Expr { return Calc(-1).Multiply(e) }

// Named math functions as chain methods. The receiver becomes the first
// argument of the call.

func (e *Expr) Min(vs ...any) *Expr   { return e.fncall("min", vs) }
func (e *Expr) Max(vs ...any) *Expr   { return e.fncall("max", vs) }
func (e *Expr) Clamp(vs ...any) *Expr { return e.fncall("clamp", vs) }
func (e *Expr) Acos() *Expr           { return e.fncall("acos", nil) }
func (e *Expr) Asin() *Expr           { return e.fncall("asin", nil) }
func (e *Expr) Atan() *Expr           { return e.fncall("atan", nil) }
func (e *Expr) Atan2(v any) *Expr     { return e.fncall("atan2", []any{v}) }
func (e *Expr) Cos() *Expr            { return e.fncall("cos", nil) }
func (e *Expr) Sin() *Expr            { return e.fncall("sin", nil) }
func (e *Expr) Tan() *Expr            { return e.fncall("tan", nil) }
func (e *Expr) Sqrt() *Expr           { return e.fncall("sqrt", nil) }
func (e *Expr) Exp() *Expr            { return e.fncall("exp", nil) }
func (e *Expr) Abs() *Expr            { return e.fncall("abs", nil) }
func (e *Expr) Pow(v any) *Expr       { return e.fncall("pow", []any{v}) }
func (e *Expr) Round(vs ...any) *Expr { return e.fncall("round", vs) }
func (e *Expr) Ceil() *Expr           { return e.fncall("ceil", nil) }
func (e *Expr) Floor() *Expr          { return e.fncall("floor", nil) }

// Log takes an optional base as its second argument.
func (e *Expr) Log(base ...any) *Expr { return e.fncall("log", base) }

// Free-standing forms of the named math functions, for expressions that
// do not start from an existing node.

func Min(vs ...any) *Expr            { return freeCall("min", vs) }
func Max(vs ...any) *Expr            { return freeCall("max", vs) }
func Clamp(lo, v, hi any) *Expr      { return freeCall("clamp", []any{lo, v, hi}) }
func Acos(v any) *Expr               { return freeCall("acos", []any{v}) }
func Asin(v any) *Expr               { return freeCall("asin", []any{v}) }
func Atan(v any) *Expr               { return freeCall("atan", []any{v}) }
func Atan2(y, x any) *Expr           { return freeCall("atan2", []any{y, x}) }
func Cos(v any) *Expr                { return freeCall("cos", []any{v}) }
func Sin(v any) *Expr                { return freeCall("sin", []any{v}) }
func Tan(v any) *Expr                { return freeCall("tan", []any{v}) }
func Sqrt(v any) *Expr               { return freeCall("sqrt", []any{v}) }
func Exp(v any) *Expr                { return freeCall("exp", []any{v}) }
func Abs(v any) *Expr                { return freeCall("abs", []any{v}) }
func Pow(x, y any) *Expr             { return freeCall("pow", []any{x, y}) }
func Round(vs ...any) *Expr          { return freeCall("round", vs) }
func Ceil(v any) *Expr               { return freeCall("ceil", []any{v}) }
func Floor(v any) *Expr              { return freeCall("floor", []any{v}) }
func Log(v any, base ...any) *Expr   { return freeCall("log", append([]any{v}, base...)) }

// E returns factor times the constant e, or the bare constant when the
// factor is 1.
func E(factor float64) *Expr {
	if factor == 1 {
		return Calc("e")
	}
	return Calc(factor).Multiply("e")
}

// Pi returns factor times the constant pi, or the bare constant when
// the factor is 1.
func Pi(factor float64) *Expr {
	if factor == 1 {
		return Calc("pi")
	}
	return Calc(factor).Multiply("pi")
}

// Inf returns the CSS infinity token, negated when negative is true.
func Inf(negative bool) *Expr {
	if negative {
		return Calc("-infinity")
	}
	return Calc("infinity")
}

// NaN returns the CSS NaN token.
func NaN() *Expr { return Calc("NaN") }

// randFloat is the pseudo-random source consumed by Random. Package
// tests pin it to a fixed draw.
var randFloat = rand.Float64

// Random samples a value in [0, 1), applies value*scale+offset, and
// wraps the result as a literal calc() node. Each call consumes one
// draw from the random source.
func Random(scale, offset float64) *Expr {
	return Calc(randFloat()*scale + offset)
}

// build renders the bare operand list: comma-joined for function calls,
// operator-joined for arithmetic nodes.
func (e *Expr) build() string {
	if e.op == "" {
		return strings.Join(e.operands, ", ")
	}
	return strings.Join(e.operands, " "+e.op+" ")
}

// String renders the node as a complete CSS value, including its
// wrapping function call.
func (e *Expr) String() string {
	return e.fn + "(" + e.build() + ")"
}
