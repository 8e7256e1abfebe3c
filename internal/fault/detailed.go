package fault

// DetailedInput holds parsed detailed-mode values.
type DetailedInput struct {
	Zp   float64 // primary-side impedance, Ω
	R1R2 float64 // secondary circuit impedance R1+R2, Ω
	Vp   float64 // primary voltage, V
	Vs   float64 // secondary voltage, V
	VA   float64 // rating, VA
	ZPct float64 // impedance, %
}

// DetailedResult is the outcome of the earth-fault loop calculation.
type DetailedResult struct {
	Input DetailedInput

	ZpReferred float64 // primary impedance referred to the secondary, Ω
	Zt         float64 // transformer impedance referred to the secondary, Ω
	Zsec       float64 // total loop impedance, Ω

	U0                 float64 // voltage to earth, V
	IEarthFault        float64 // A
	IPrimaryFault      float64 // A
	ISecondaryFullLoad float64 // A
	IMaxTheoretical    float64 // A, reference only
}

// ComputeDetailed parses the detailed-mode fields and evaluates them.
func ComputeDetailed(in Input) (DetailedResult, error) {
	v, err := parse(in, detailedFields)
	if err != nil {
		return DetailedResult{}, err
	}
	return CalculateDetailed(DetailedInput{
		Zp:   v[KeyZp],
		R1R2: v[KeyR1R2],
		Vp:   v[KeyVp],
		Vs:   v[KeyVs],
		VA:   v[KeyVA],
		ZPct: v[KeyZPct],
	})
}

// CalculateDetailed evaluates the loop impedance by per-unit referral of the
// primary impedance to the secondary side:
//
//	Zp_referred = Zp × (Vs / Vp)²
//	Zt          = (Z% / 100) × (Vs² / VA)
//	Zsec        = Zp_referred + Zt + R1R2
//
// and the currents on a three-phase system:
//
//	U0                    = Vs / √3
//	I_earth_fault         = U0 / Zsec
//	I_primary_fault       = I_earth_fault × (Vs / Vp)
//	I_secondary_full_load = VA / (√3 × Vs)
//	I_max_theoretical     = (100 / Z%) × I_secondary_full_load
//
// The form Zp × (Vs²/Vp) × (Z%/100) / VA + R1R2 found in older copies of the
// calculator is dimensionally wrong and is not supported.
func CalculateDetailed(in DetailedInput) (DetailedResult, error) {
	err := check(
		named{KeyZp, in.Zp},
		named{KeyR1R2, in.R1R2},
		named{KeyVp, in.Vp},
		named{KeyVs, in.Vs},
		named{KeyVA, in.VA},
		named{KeyZPct, in.ZPct},
	)
	if err != nil {
		return DetailedResult{}, err
	}
	if in.Vp == 0 {
		return DetailedResult{}, divisionByZero("primary voltage")
	}
	if in.VA == 0 {
		return DetailedResult{}, divisionByZero("VA rating")
	}
	if in.Vs == 0 {
		return DetailedResult{}, divisionByZero("secondary voltage")
	}

	r := DetailedResult{Input: in}
	ratio := in.Vs / in.Vp
	// Conversions keep each term rounded before the sum on FMA targets.
	r.ZpReferred = float64(in.Zp * ratio * ratio)
	r.Zt = float64((in.ZPct / 100) * (in.Vs * in.Vs / in.VA))
	r.Zsec = r.ZpReferred + r.Zt + in.R1R2
	if r.Zsec == 0 {
		return DetailedResult{}, divisionByZero("loop impedance")
	}

	r.U0 = in.Vs / sqrt3
	r.IEarthFault = r.U0 / r.Zsec
	r.IPrimaryFault = r.IEarthFault * ratio
	r.ISecondaryFullLoad = in.VA / (sqrt3 * in.Vs)
	r.IMaxTheoretical = (100 / in.ZPct) * r.ISecondaryFullLoad

	if err := finite(r.Result().Outputs); err != nil {
		return DetailedResult{}, err
	}
	return r, nil
}

// Result returns the mode-independent view.
func (r DetailedResult) Result() Result {
	return Result{
		Mode: Detailed,
		Inputs: inputs(Detailed, map[string]float64{
			KeyZp:   r.Input.Zp,
			KeyR1R2: r.Input.R1R2,
			KeyVp:   r.Input.Vp,
			KeyVs:   r.Input.Vs,
			KeyVA:   r.Input.VA,
			KeyZPct: r.Input.ZPct,
		}),
		Outputs: []Quantity{
			{Key: OutZsec, Label: "Total Loop Impedance (Zsec)", Unit: "Ω", Value: r.Zsec},
			{Key: OutIEarthFault, Label: "Earth Fault Current", Unit: "A", Value: r.IEarthFault},
			{Key: OutIPrimaryFault, Label: "Primary Fault Current", Unit: "A", Value: r.IPrimaryFault},
			{Key: OutISecondaryFL, Label: "Secondary Full Load Current", Unit: "A", Value: r.ISecondaryFullLoad},
			{Key: OutIMaxTheoretical, Label: "Max Theoretical Fault Current", Unit: "A", Value: r.IMaxTheoretical},
			{Key: OutZpReferred, Label: "Primary Circuit (referred to sec.)", Unit: "Ω", Value: r.ZpReferred},
			{Key: OutZt, Label: "Transformer Impedance (referred to sec.)", Unit: "Ω", Value: r.Zt},
			{Key: OutR1R2, Label: "Secondary Circuit (R1 + R2)", Unit: "Ω", Value: r.Input.R1R2},
			{Key: OutU0, Label: "Voltage to Earth", Unit: "V", Value: r.U0},
		},
	}
}
