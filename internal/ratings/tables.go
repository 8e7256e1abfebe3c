package ratings

import "fmt"

// TableName identifies one of the rating tables.
type TableName string

const (
	SinglePhase240VTable   TableName = "single_phase_240v"
	ThreePhase480VTable    TableName = "three_phase_480v"
	Distribution11kVTable  TableName = "distribution_11kv"
	PowerTransformersTable TableName = "power_transformers"
)

// Info describes how a table is presented.
type Info struct {
	Name    TableName
	Title   string
	Tab     string
	Headers []string
}

var names = []TableName{
	SinglePhase240VTable,
	ThreePhase480VTable,
	Distribution11kVTable,
	PowerTransformersTable,
}

var infos = map[TableName]Info{
	SinglePhase240VTable: {
		Name:    SinglePhase240VTable,
		Title:   "Single Phase 240V Transformers",
		Tab:     "Single Phase 240V",
		Headers: []string{"kVA", "Base Current (A)", "Max SC (A)"},
	},
	ThreePhase480VTable: {
		Name:    ThreePhase480VTable,
		Title:   "Three Phase 480V Transformers",
		Tab:     "Three Phase 480V",
		Headers: []string{"kVA", "Base Current (A)", "Max SC (A)"},
	},
	Distribution11kVTable: {
		Name:    Distribution11kVTable,
		Title:   "Distribution Transformers 11kV/415V",
		Tab:     "Distribution 11kV/415V",
		Headers: []string{"kVA", "V_pri", "V_sec", "I_base (A)", "Z (%)"},
	},
	PowerTransformersTable: {
		Name:    PowerTransformersTable,
		Title:   "Power Transformers",
		Tab:     "Power Transformers",
		Headers: []string{"MVA", "Voltage", "I_hv (A)", "I_lv (A)", "Z (%)"},
	},
}

var singlePhase240V = []SinglePhase240V{
	{KVA: 1, BaseCurrent: 4.17, MaxShortCircuit: 8.34},
	{KVA: 5, BaseCurrent: 20.8, MaxShortCircuit: 41.6},
	{KVA: 10, BaseCurrent: 41.67, MaxShortCircuit: 83.34},
	{KVA: 15, BaseCurrent: 62.5, MaxShortCircuit: 125.0},
	{KVA: 25, BaseCurrent: 104.17, MaxShortCircuit: 208.34},
	{KVA: 37.5, BaseCurrent: 156.25, MaxShortCircuit: 312.5},
	{KVA: 50, BaseCurrent: 208.33, MaxShortCircuit: 416.66},
	{KVA: 75, BaseCurrent: 312.5, MaxShortCircuit: 625.0},
	{KVA: 100, BaseCurrent: 416.67, MaxShortCircuit: 833.34},
	{KVA: 167, BaseCurrent: 695.83, MaxShortCircuit: 1391.66},
	{KVA: 250, BaseCurrent: 1041.67, MaxShortCircuit: 2083.34},
}

var threePhase480V = []ThreePhase480V{
	{KVA: 3, BaseCurrent: 3.6, MaxShortCircuit: 7.2},
	{KVA: 6, BaseCurrent: 7.2, MaxShortCircuit: 14.4},
	{KVA: 9, BaseCurrent: 10.8, MaxShortCircuit: 21.6},
	{KVA: 15, BaseCurrent: 18.0, MaxShortCircuit: 36.0},
	{KVA: 30, BaseCurrent: 36.1, MaxShortCircuit: 72.2},
	{KVA: 45, BaseCurrent: 54.1, MaxShortCircuit: 108.2},
	{KVA: 75, BaseCurrent: 90.2, MaxShortCircuit: 180.4},
	{KVA: 112.5, BaseCurrent: 135.3, MaxShortCircuit: 270.6},
	{KVA: 150, BaseCurrent: 180.4, MaxShortCircuit: 360.8},
	{KVA: 225, BaseCurrent: 270.6, MaxShortCircuit: 541.2},
	{KVA: 300, BaseCurrent: 360.8, MaxShortCircuit: 721.6},
	{KVA: 500, BaseCurrent: 601.4, MaxShortCircuit: 1202.8},
	{KVA: 750, BaseCurrent: 902.1, MaxShortCircuit: 1804.2},
	{KVA: 1000, BaseCurrent: 1202.8, MaxShortCircuit: 2405.6},
}

var distribution11kV = []Distribution11kV{
	{KVA: 100, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 139.2, ImpedancePct: 4.5},
	{KVA: 200, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 278.4, ImpedancePct: 4.5},
	{KVA: 315, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 439.0, ImpedancePct: 5.0},
	{KVA: 630, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 878.0, ImpedancePct: 5.5},
	{KVA: 1000, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 1393.3, ImpedancePct: 6.0},
	{KVA: 1250, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 1741.6, ImpedancePct: 6.0},
	{KVA: 1600, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 2229.3, ImpedancePct: 6.5},
	{KVA: 2000, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 2786.6, ImpedancePct: 6.5},
	{KVA: 2500, PrimaryVoltage: 11000, SecondaryVoltage: 415, BaseCurrent: 3483.3, ImpedancePct: 7.0},
}

var powerTransformers = []PowerTransformer{
	{MVA: 12.5, VoltageLabel: "66/11 kV", HVCurrent: 109.5, LVCurrent: 656.0, ImpedancePct: 8.0},
	{MVA: 20, VoltageLabel: "66/11 kV", HVCurrent: 175.2, LVCurrent: 1049.7, ImpedancePct: 8.5},
	{MVA: 31.5, VoltageLabel: "66/11 kV", HVCurrent: 276.0, LVCurrent: 1653.0, ImpedancePct: 9.0},
	{MVA: 100, VoltageLabel: "132/11 kV", HVCurrent: 437.6, LVCurrent: 5247.0, ImpedancePct: 12.0},
	{MVA: 160, VoltageLabel: "132/11 kV", HVCurrent: 700.2, LVCurrent: 8395.2, ImpedancePct: 12.5},
	{MVA: 315, VoltageLabel: "400/220 kV", HVCurrent: 454.7, LVCurrent: 825.8, ImpedancePct: 14.0},
	{MVA: 500, VoltageLabel: "765/400 kV", HVCurrent: 377.6, LVCurrent: 721.7, ImpedancePct: 15.0},
}

// Names returns the table names in display order.
func Names() []TableName {
	out := make([]TableName, len(names))
	copy(out, names)
	return out
}

// ParseTableName accepts a table name as listed by Names.
func ParseTableName(s string) (TableName, error) {
	name := TableName(s)
	if _, ok := infos[name]; !ok {
		return "", fmt.Errorf("unknown table %q", s)
	}
	return name, nil
}

// TableInfo returns the presentation metadata of a table.
func TableInfo(name TableName) (Info, bool) {
	info, ok := infos[name]
	if !ok {
		return Info{}, false
	}
	info.Headers = append([]string(nil), info.Headers...)
	return info, true
}

// Category returns the rows of a table in their listed order. Unknown names
// yield nil.
func Category(name TableName) []Record {
	switch name {
	case SinglePhase240VTable:
		return records(singlePhase240V)
	case ThreePhase480VTable:
		return records(threePhase480V)
	case Distribution11kVTable:
		return records(distribution11kV)
	case PowerTransformersTable:
		return records(powerTransformers)
	}
	return nil
}

// Lookup returns the row of a table whose rating equals rating.
func Lookup(name TableName, rating float64) (Record, bool) {
	for _, r := range Category(name) {
		if r.Rating() == rating {
			return r, true
		}
	}
	return nil, false
}

// SinglePhase returns a copy of the single phase 240 V table.
func SinglePhase() []SinglePhase240V { return append([]SinglePhase240V(nil), singlePhase240V...) }

// ThreePhase returns a copy of the three phase 480 V table.
func ThreePhase() []ThreePhase480V { return append([]ThreePhase480V(nil), threePhase480V...) }

// Distribution returns a copy of the 11 kV distribution table.
func Distribution() []Distribution11kV {
	return append([]Distribution11kV(nil), distribution11kV...)
}

// Power returns a copy of the power transformer table.
func Power() []PowerTransformer { return append([]PowerTransformer(nil), powerTransformers...) }

func records[T Record](rows []T) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
