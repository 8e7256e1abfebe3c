package fault

import "math"

var sqrt3 = math.Sqrt(3)

// SimpleInput holds parsed simple-mode values.
type SimpleInput struct {
	Vp   float64 // primary voltage, V
	Vs   float64 // secondary voltage, V
	KVA  float64 // rating, kVA
	ZPct float64 // impedance, %
}

// SimpleResult is the outcome of the simple fault-current calculation.
type SimpleResult struct {
	Input SimpleInput

	Vz          float64 // impedance voltage, V
	ISecondary  float64 // secondary full-load current, A
	IFaultMax   float64 // maximum fault current, A
	IFaultMaxKA float64 // maximum fault current, kA
	IPrimary    float64 // primary full-load current, A
}

// ComputeSimple parses the simple-mode fields and evaluates them.
func ComputeSimple(in Input) (SimpleResult, error) {
	v, err := parse(in, simpleFields)
	if err != nil {
		return SimpleResult{}, err
	}
	return CalculateSimple(SimpleInput{
		Vp:   v[KeyVp],
		Vs:   v[KeyVs],
		KVA:  v[KeyKVA],
		ZPct: v[KeyZPct],
	})
}

// CalculateSimple evaluates the simple-mode formulas:
//
//	Vz          = Vp × Z% / 100
//	I_secondary = VA / (√3 × Vs)
//	I_fault_max = (100 / Z%) × I_secondary
//	I_primary   = VA / (√3 × Vp)
//
// with VA = kVA × 1000. Values are not rounded.
func CalculateSimple(in SimpleInput) (SimpleResult, error) {
	err := check(
		named{KeyVp, in.Vp},
		named{KeyVs, in.Vs},
		named{KeyKVA, in.KVA},
		named{KeyZPct, in.ZPct},
	)
	if err != nil {
		return SimpleResult{}, err
	}

	va := in.KVA * 1000
	r := SimpleResult{Input: in}
	r.Vz = in.Vp * in.ZPct / 100
	r.ISecondary = va / (sqrt3 * in.Vs)
	r.IFaultMax = (100 / in.ZPct) * r.ISecondary
	r.IFaultMaxKA = r.IFaultMax / 1000
	r.IPrimary = va / (sqrt3 * in.Vp)

	if err := finite(r.Result().Outputs); err != nil {
		return SimpleResult{}, err
	}
	return r, nil
}

// Result returns the mode-independent view.
func (r SimpleResult) Result() Result {
	return Result{
		Mode: Simple,
		Inputs: inputs(Simple, map[string]float64{
			KeyVp:   r.Input.Vp,
			KeyVs:   r.Input.Vs,
			KeyKVA:  r.Input.KVA,
			KeyZPct: r.Input.ZPct,
		}),
		Outputs: []Quantity{
			{Key: OutVz, Label: "Impedance Voltage (Vz)", Unit: "V", Value: r.Vz},
			{Key: OutISecondary, Label: "Secondary Full Load Current", Unit: "A", Value: r.ISecondary},
			{Key: OutIPrimary, Label: "Primary Current", Unit: "A", Value: r.IPrimary},
			{Key: OutIFaultMax, Label: "Maximum Fault Current", Unit: "A", Value: r.IFaultMax},
			{Key: OutIFaultMaxKA, Label: "Maximum Fault Current", Unit: "kA", Value: r.IFaultMaxKA},
		},
	}
}

func finite(qs []Quantity) error {
	for _, q := range qs {
		if math.IsInf(q.Value, 0) || math.IsNaN(q.Value) {
			return unexpected("%s evaluated to %v", q.Key, q.Value)
		}
	}
	return nil
}
