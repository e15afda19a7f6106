package interest

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

type coercer struct{ errs []FieldError }

func (c *coercer) fail(field, msg string) { c.errs = append(c.errs, FieldError{Field: field, Message: msg}) }

func (c *coercer) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &InputError{Fields: c.errs}
}

// number accepts numbers, bools and numeric strings; nil yields def.
func (c *coercer) number(field string, raw any, def float64) float64 {
	if raw == nil {
		return def
	}
	if !scalar(raw) {
		c.fail(field, "must be a number")
		return def
	}
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		c.fail(field, "must be a number")
		return def
	}
	return f
}

// integer truncates fractional numbers toward zero; strings must be integer literals.
func (c *coercer) integer(field string, raw any, def int) int {
	if raw == nil {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			c.fail(field, "must be an integer")
			return def
		}
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(v)
		if !integerLiteral(s) {
			c.fail(field, "must be an integer")
			return def
		}
		// trim leading zeros so "010" means ten, not octal eight
		neg := strings.HasPrefix(s, "-")
		s = strings.TrimLeft(strings.TrimLeft(s, "+-"), "0")
		if s == "" {
			s = "0"
		}
		if neg {
			s = "-" + s
		}
		n, err := cast.ToInt64E(s)
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			c.fail(field, "must be an integer")
			return def
		}
		return int(n)
	}
	c.fail(field, "must be an integer")
	return def
}

func scalar(v any) bool {
	switch v.(type) {
	case float64, int, bool, string:
		return true
	}
	return false
}

// integerLiteral accepts an optional sign followed by decimal digits only,
// so "10.0", "1e3" and "0x1f" are refused before cast sees them.
func integerLiteral(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
