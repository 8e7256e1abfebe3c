// Package fault evaluates transformer fault-current and earth-fault loop
// formulas from user-entered text.
//
// Every function is pure: the same input always yields the same result and
// nothing is cached or logged. Failures are returned as *Error values.
package fault

// Compute validates in against the fields of mode and evaluates the mode's
// formulas. It backs the single form-driven calculation screen.
func Compute(mode Mode, in Input) (Result, error) {
	switch mode {
	case Simple:
		r, err := ComputeSimple(in)
		if err != nil {
			return Result{}, err
		}
		return r.Result(), nil
	case Detailed:
		r, err := ComputeDetailed(in)
		if err != nil {
			return Result{}, err
		}
		return r.Result(), nil
	}
	return Result{}, unexpected("unknown calculation mode %v", mode)
}
