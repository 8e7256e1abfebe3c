package fault

import (
	"fmt"
	"strings"
)

// Mode selects which set of formulas is evaluated.
type Mode int

const (
	Simple Mode = iota + 1
	Detailed
)

// Field keys shared by the input maps of both modes.
const (
	KeyVp   = "vp"
	KeyVs   = "vs"
	KeyKVA  = "kva"
	KeyZPct = "z_pct"
	KeyZp   = "zp"
	KeyR1R2 = "r1r2"
	KeyVA   = "va"
)

// Field describes one user-entered value.
type Field struct {
	Key         string
	Label       string
	Unit        string
	Placeholder string
}

var simpleFields = []Field{
	{Key: KeyVp, Label: "Primary Voltage (Vp)", Unit: "V", Placeholder: "11000"},
	{Key: KeyVs, Label: "Secondary Voltage (Vs)", Unit: "V", Placeholder: "415"},
	{Key: KeyKVA, Label: "Transformer Rating", Unit: "kVA", Placeholder: "1000"},
	{Key: KeyZPct, Label: "Impedance (Z%)", Unit: "%", Placeholder: "6"},
}

var detailedFields = []Field{
	{Key: KeyZp, Label: "Primary Impedance (Zp)", Unit: "Ω", Placeholder: "0.46"},
	{Key: KeyR1R2, Label: "Secondary Impedance (R1+R2)", Unit: "Ω", Placeholder: "0.2"},
	{Key: KeyVp, Label: "Primary Voltage (Vp)", Unit: "V", Placeholder: "11000"},
	{Key: KeyVs, Label: "Secondary Voltage (Vs)", Unit: "V", Placeholder: "415"},
	{Key: KeyVA, Label: "Transformer Rating", Unit: "VA", Placeholder: "1000000"},
	{Key: KeyZPct, Label: "Impedance (Z%)", Unit: "%", Placeholder: "6"},
}

// Fields returns the ordered input fields of the mode.
func (m Mode) Fields() []Field {
	var src []Field
	switch m {
	case Simple:
		src = simpleFields
	case Detailed:
		src = detailedFields
	}
	out := make([]Field, len(src))
	copy(out, src)
	return out
}

// Title is the screen title of the mode.
func (m Mode) Title() string {
	switch m {
	case Simple:
		return "Simple Calculations"
	case Detailed:
		return "Detailed Calculations"
	}
	return ""
}

func (m Mode) String() string {
	switch m {
	case Simple:
		return "simple"
	case Detailed:
		return "detailed"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps "simple" or "detailed" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "s":
		return Simple, nil
	case "detailed", "d":
		return Detailed, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want simple or detailed)", s)
}
