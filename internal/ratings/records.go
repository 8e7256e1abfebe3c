// Package ratings holds the compiled-in reference tables of transformer ratings.
//
// The tables never change at runtime. Every accessor returns a fresh copy, so
// callers may modify what they get back without affecting later lookups.
package ratings

import "strconv"

// Record is one row of a rating table. The set of implementations is closed.
type Record interface {
	// Table reports the table the row belongs to.
	Table() TableName
	// Rating is the row's size: kVA, or MVA for power transformers.
	Rating() float64
	// Cells renders the row's fields in column order.
	Cells() []string

	record()
}

// SinglePhase240V is a row of the single phase 240 V table.
type SinglePhase240V struct {
	KVA             float64
	BaseCurrent     float64 // A
	MaxShortCircuit float64 // A
}

// ThreePhase480V is a row of the three phase 480 V table.
type ThreePhase480V struct {
	KVA             float64
	BaseCurrent     float64 // A
	MaxShortCircuit float64 // A
}

// Distribution11kV is a row of the 11 kV/415 V distribution table.
type Distribution11kV struct {
	KVA              float64
	PrimaryVoltage   float64 // V
	SecondaryVoltage float64 // V
	BaseCurrent      float64 // A
	ImpedancePct     float64
}

// PowerTransformer is a row of the power transformer table.
type PowerTransformer struct {
	MVA          float64
	VoltageLabel string // e.g. "66/11 kV"
	HVCurrent    float64 // A
	LVCurrent    float64 // A
	ImpedancePct float64
}

func (SinglePhase240V) Table() TableName  { return SinglePhase240VTable }
func (ThreePhase480V) Table() TableName   { return ThreePhase480VTable }
func (Distribution11kV) Table() TableName { return Distribution11kVTable }
func (PowerTransformer) Table() TableName { return PowerTransformersTable }

func (r SinglePhase240V) Rating() float64  { return r.KVA }
func (r ThreePhase480V) Rating() float64   { return r.KVA }
func (r Distribution11kV) Rating() float64 { return r.KVA }
func (r PowerTransformer) Rating() float64 { return r.MVA }

func (r SinglePhase240V) Cells() []string {
	return []string{num(r.KVA), num(r.BaseCurrent), num(r.MaxShortCircuit)}
}

func (r ThreePhase480V) Cells() []string {
	return []string{num(r.KVA), num(r.BaseCurrent), num(r.MaxShortCircuit)}
}

func (r Distribution11kV) Cells() []string {
	return []string{num(r.KVA), num(r.PrimaryVoltage), num(r.SecondaryVoltage), num(r.BaseCurrent), num(r.ImpedancePct)}
}

func (r PowerTransformer) Cells() []string {
	return []string{num(r.MVA), r.VoltageLabel, num(r.HVCurrent), num(r.LVCurrent), num(r.ImpedancePct)}
}

func (SinglePhase240V) record()  {}
func (ThreePhase480V) record()   {}
func (Distribution11kV) record() {}
func (PowerTransformer) record() {}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
