package fault

// Quantity is one named value of a calculation, input or output.
type Quantity struct {
	Key   string
	Label string
	Unit  string
	Value float64
}

// Result is the mode-independent view of a calculation: the echoed inputs
// and the outputs, both in display order.
type Result struct {
	Mode    Mode
	Inputs  []Quantity
	Outputs []Quantity
}

// Output returns the output quantity with the given key.
func (r Result) Output(key string) (Quantity, bool) {
	for _, q := range r.Outputs {
		if q.Key == key {
			return q, true
		}
	}
	return Quantity{}, false
}

// Input returns the echoed input quantity with the given key.
func (r Result) Input(key string) (Quantity, bool) {
	for _, q := range r.Inputs {
		if q.Key == key {
			return q, true
		}
	}
	return Quantity{}, false
}

// Output keys.
const (
	OutVz              = "vz"
	OutISecondary      = "i_secondary"
	OutIFaultMax       = "i_fault_max"
	OutIFaultMaxKA     = "i_fault_max_ka"
	OutIPrimary        = "i_primary"
	OutZpReferred      = "zp_referred"
	OutZt              = "zt"
	OutR1R2            = "r1r2"
	OutZsec            = "zsec"
	OutU0              = "u0"
	OutIEarthFault     = "i_earth_fault"
	OutIPrimaryFault   = "i_primary_fault"
	OutISecondaryFL    = "i_secondary_full_load"
	OutIMaxTheoretical = "i_max_theoretical"
)

func inputs(mode Mode, values map[string]float64) []Quantity {
	fields := mode.Fields()
	out := make([]Quantity, 0, len(fields))
	for _, f := range fields {
		out = append(out, Quantity{Key: f.Key, Label: f.Label, Unit: f.Unit, Value: values[f.Key]})
	}
	return out
}
