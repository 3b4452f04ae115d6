package cssval

import (
	"fmt"
	"strconv"
	"strings"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// formatNumber renders a float the way CSS expects: shortest decimal
// form, no exponent.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseFullNumber reports whether s parses entirely as a finite number,
// and its value. Partial matches like "10px" or "var(--x)" do not count.
func parseFullNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, n := parseStrconv.ParseFloat([]byte(s))
	if n != len(s) {
		return 0, false
	}
	return f, true
}

// unit appends a unit suffix to a numeric value. The literal zero stays
// bare; text that does not parse as a number passes through untouched,
// on the assumption that it is already a complete CSS value such as a
// var() reference.
func unit(v any, suffix string) string {
	switch x := toOperand(v); x.kind {
	case operandNumber:
		if x.num == 0 {
			return "0"
		}
		return formatNumber(x.num) + suffix
	case operandExpr:
		return x.expr.String()
	default:
		s := strings.TrimSpace(x.text)
		if f, ok := parseFullNumber(s); ok {
			if f == 0 {
				return "0"
			}
			return s + suffix
		}
		return x.text
	}
}

// duration appends a time suffix. Unlike lengths and angles, zero keeps
// its unit: "0" alone is not a valid CSS time. Numeric-looking strings
// are suffixed as-is, including negative and decimal ones.
func duration(v any, suffix string) string {
	switch x := toOperand(v); x.kind {
	case operandNumber:
		return formatNumber(x.num) + suffix
	case operandExpr:
		return x.expr.String()
	default:
		s := strings.TrimSpace(x.text)
		if _, ok := parseFullNumber(s); ok {
			return s + suffix
		}
		return x.text
	}
}

// number renders a unitless numeric argument, passing non-numeric text
// through unchanged.
func number(v any) string {
	switch x := toOperand(v); x.kind {
	case operandNumber:
		return formatNumber(x.num)
	case operandExpr:
		return x.expr.String()
	default:
		return x.text
	}
}

// Unit-suffix helpers. Each accepts a number, a numeric string, or any
// other CSS value text and applies the coercion contract above.

func Px(v any) string      { return unit(v, "px") }
func Em(v any) string      { return unit(v, "em") }
func Rem(v any) string     { return unit(v, "rem") }
func Percent(v any) string { return unit(v, "%") }
func Vw(v any) string      { return unit(v, "vw") }
func Vh(v any) string      { return unit(v, "vh") }
func Deg(v any) string     { return unit(v, "deg") }
func Rad(v any) string     { return unit(v, "rad") }
func Turn(v any) string    { return unit(v, "turn") }

// Ms and S suffix time values; zero keeps its unit.

func Ms(v any) string { return duration(v, "ms") }
func S(v any) string  { return duration(v, "s") }

// joinArgs renders a function-style fragment like "name(a, b, c)".
func joinArgs(name string, args []string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}
