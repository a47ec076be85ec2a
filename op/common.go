package op

// Arithmetic returns the canonical {+, -, ×, ÷} function set used by
// symbolic regression. Division is unprotected: a division by zero yields
// ±Inf or NaN, which the loss function (package problem) turns into a
// worst-case fitness rather than a panic.
func Arithmetic() []Operator {
	return []Operator{
		NewFunction("+", 2, func(c []float64) float64 { return c[0] + c[1] }),
		NewFunction("-", 2, func(c []float64) float64 { return c[0] - c[1] }),
		NewFunction("*", 2, func(c []float64) float64 { return c[0] * c[1] }),
		NewFunction("/", 2, func(c []float64) float64 { return c[0] / c[1] }),
	}
}
