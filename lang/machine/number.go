package machine

import "strconv"

// Number is the type of the language's only numeric type: a floating-point
// number. Its canonical display renders whole values without a trailing
// ".0" (e.g. "-5", not "-5.0").
type Number float64

var _ Value = Number(0)

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (Number) Type() string { return "number" }
