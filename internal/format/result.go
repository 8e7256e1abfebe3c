package format

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"transformer-calc/internal/fault"
)

// FormatResult produces the human-readable report of a calculation: the
// results, the formulas used and the echoed inputs.
func FormatResult(r fault.Result) string {
	switch r.Mode {
	case fault.Simple:
		return formatSimple(r)
	case fault.Detailed:
		return formatDetailed(r)
	}
	return ""
}

func formatSimple(r fault.Result) string {
	var b strings.Builder

	b.WriteString("=== Calculation Results ===\n")
	writeOutput(&b, r, fault.OutVz, "%.2f")
	writeOutput(&b, r, fault.OutISecondary, "%.2f")
	writeOutput(&b, r, fault.OutIPrimary, "%.2f")
	writeOutput(&b, r, fault.OutIFaultMax, "%.2f")
	writeOutput(&b, r, fault.OutIFaultMaxKA, "%.3f")

	b.WriteString("\n--- Formulas Used ---\n")
	b.WriteString("Vz = (Vp × Z%) / 100\n")
	b.WriteString("I_secondary = VA / (√3 × Vs)\n")
	b.WriteString("I_fault_max = (100 / Z%) × I_secondary\n")
	b.WriteString("I_primary = VA / (√3 × Vp)\n")

	b.WriteString("\n--- Input Values ---\n")
	writeInputs(&b, r)

	b.WriteString("\nANALYSIS COMPLETE")
	return b.String()
}

func formatDetailed(r fault.Result) string {
	var b strings.Builder

	b.WriteString("=== Detailed Fault Analysis Results ===\n")
	writeOutput(&b, r, fault.OutZsec, "%.4f")
	writeOutput(&b, r, fault.OutIEarthFault, "%.2f")
	writeOutput(&b, r, fault.OutIPrimaryFault, "%.2f")
	writeOutput(&b, r, fault.OutISecondaryFL, "%.2f")
	writeOutput(&b, r, fault.OutIMaxTheoretical, "%.2f")

	b.WriteString("\n--- Impedance Breakdown ---\n")
	writeOutput(&b, r, fault.OutZpReferred, "%.4f")
	writeOutput(&b, r, fault.OutZt, "%.4f")
	writeOutput(&b, r, fault.OutR1R2, "%.4f")

	b.WriteString("\n--- System Parameters ---\n")
	writeInputs(&b, r)
	writeOutput(&b, r, fault.OutU0, "%.1f")

	b.WriteString("\nANALYSIS COMPLETE")
	return b.String()
}

func writeOutput(b *strings.Builder, r fault.Result, key, verb string) {
	q, ok := r.Output(key)
	if !ok {
		return
	}
	b.WriteString(fmt.Sprintf("%-42s "+verb+" %s\n", q.Label+":", q.Value, q.Unit))
}

func writeInputs(b *strings.Builder, r fault.Result) {
	for _, q := range r.Inputs {
		b.WriteString(fmt.Sprintf("%-42s %s %s\n", q.Label+":", Number(q.Value), q.Unit))
	}
}

// Number renders an input value with thousands separators and at most four
// decimals, trailing zeros dropped: 11000 → "11,000", 0.46 → "0.46".
func Number(v float64) string {
	return humanize.CommafWithDigits(v, 4)
}

// Value renders an output quantity at its display precision: four decimals
// for impedances, three for kA, two otherwise.
func Value(q fault.Quantity) string {
	switch q.Unit {
	case "Ω":
		return fmt.Sprintf("%.4f", q.Value)
	case "kA":
		return fmt.Sprintf("%.3f", q.Value)
	}
	return fmt.Sprintf("%.2f", q.Value)
}
