package fault

import (
	"math"
	"strconv"
	"strings"
)

// Input holds the raw text of each field, keyed by field key.
type Input map[string]string

// parse converts the fields to numbers. Positivity is checked afterwards by
// the numeric entry points, so NotNumeric on any field wins over NonPositive.
func parse(in Input, fields []Field) (map[string]float64, error) {
	values := make(map[string]float64, len(fields))
	for _, f := range fields {
		v, ok := parseNumber(in[f.Key])
		if !ok {
			return nil, notNumeric(f.Key)
		}
		values[f.Key] = v
	}
	return values, nil
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

type named struct {
	key   string
	value float64
}

// check applies the same rules as parse to already numeric values.
func check(vals ...named) error {
	for _, v := range vals {
		if math.IsInf(v.value, 0) || math.IsNaN(v.value) {
			return notNumeric(v.key)
		}
	}
	for _, v := range vals {
		if v.value <= 0 {
			return nonPositive(v.key)
		}
	}
	return nil
}
