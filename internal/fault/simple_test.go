package fault

import (
	"errors"
	"math"
	"testing"
)

func simpleInput() Input {
	return Input{KeyVp: "11000", KeyVs: "415", KeyKVA: "1000", KeyZPct: "6"}
}

func within(got, want, rel float64) bool {
	return math.Abs(got-want) <= math.Abs(want)*rel
}

func TestComputeSimpleScenario(t *testing.T) {
	r, err := ComputeSimple(simpleInput())
	if err != nil {
		t.Fatalf("ComputeSimple() error = %v", err)
	}

	if r.Vz != 660.0 {
		t.Errorf("Vz = %v, want 660", r.Vz)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"ISecondary", r.ISecondary, 1391.37},
		{"IFaultMax", r.IFaultMax, 23189.4},
		{"IFaultMaxKA", r.IFaultMaxKA, 23.19},
		{"IPrimary", r.IPrimary, 52.48},
	}
	for _, c := range checks {
		if !within(c.got, c.want, 1e-3) {
			t.Errorf("%s = %v, want ≈%v", c.name, c.got, c.want)
		}
	}

	if r.Input != (SimpleInput{Vp: 11000, Vs: 415, KVA: 1000, ZPct: 6}) {
		t.Errorf("Input = %+v, inputs not echoed", r.Input)
	}
}

func TestComputeSimpleFormulas(t *testing.T) {
	cases := []SimpleInput{
		{Vp: 11000, Vs: 415, KVA: 1000, ZPct: 6},
		{Vp: 33000, Vs: 11000, KVA: 20000, ZPct: 8.5},
		{Vp: 240, Vs: 120, KVA: 0.5, ZPct: 2.2},
		{Vp: 1e-3, Vs: 1e-3, KVA: 1e-3, ZPct: 1e-3},
	}
	for _, in := range cases {
		r, err := CalculateSimple(in)
		if err != nil {
			t.Fatalf("CalculateSimple(%+v) error = %v", in, err)
		}
		va := in.KVA * 1000
		iSec := va / (math.Sqrt(3) * in.Vs)
		wantFault := (100 / in.ZPct) * iSec
		if r.IFaultMax != wantFault {
			t.Errorf("%+v: IFaultMax = %v, want %v", in, r.IFaultMax, wantFault)
		}
		if r.IFaultMaxKA != r.IFaultMax/1000 {
			t.Errorf("%+v: IFaultMaxKA = %v, want %v", in, r.IFaultMaxKA, r.IFaultMax/1000)
		}
		if want := va / (math.Sqrt(3) * in.Vp); r.IPrimary != want {
			t.Errorf("%+v: IPrimary = %v, want %v", in, r.IPrimary, want)
		}
		if want := in.Vp * in.ZPct / 100; r.Vz != want {
			t.Errorf("%+v: Vz = %v, want %v", in, r.Vz, want)
		}
	}
}

func TestComputeSimpleNotNumeric(t *testing.T) {
	bad := []string{"", "abc", "  ", "1,000", "12kV", "inf", "NaN", "1e400"}
	for _, f := range simpleFields {
		for _, text := range bad {
			in := simpleInput()
			in[f.Key] = text
			_, err := ComputeSimple(in)
			if !errors.Is(err, ErrNotNumeric) {
				t.Errorf("field %s = %q: error = %v, want NotNumeric", f.Key, text, err)
				continue
			}
			var fe *Error
			if errors.As(err, &fe) && fe.Field != f.Key {
				t.Errorf("field %s = %q: error field = %q", f.Key, text, fe.Field)
			}
		}
	}
}

func TestComputeSimpleMissingField(t *testing.T) {
	in := simpleInput()
	delete(in, KeyKVA)
	if _, err := ComputeSimple(in); KindOf(err) != NotNumeric {
		t.Errorf("missing kva: kind = %v, want NotNumeric", KindOf(err))
	}
}

func TestComputeSimpleNonPositive(t *testing.T) {
	for _, f := range simpleFields {
		for _, text := range []string{"0", "-1", "-0.001", "0.0"} {
			in := simpleInput()
			in[f.Key] = text
			_, err := ComputeSimple(in)
			if !errors.Is(err, ErrNonPositive) {
				t.Errorf("field %s = %q: error = %v, want NonPositive", f.Key, text, err)
			}
		}
	}
}

func TestComputeSimpleNotNumericWinsOverNonPositive(t *testing.T) {
	in := simpleInput()
	in[KeyVp] = "0"
	in[KeyZPct] = "x"
	if _, err := ComputeSimple(in); KindOf(err) != NotNumeric {
		t.Errorf("kind = %v, want NotNumeric", KindOf(err))
	}
}

func TestComputeSimpleAcceptsWhitespaceAndExponent(t *testing.T) {
	in := Input{KeyVp: " 1.1e4 ", KeyVs: "415\t", KeyKVA: "1e3", KeyZPct: "6.0"}
	r, err := ComputeSimple(in)
	if err != nil {
		t.Fatalf("ComputeSimple() error = %v", err)
	}
	want, _ := ComputeSimple(simpleInput())
	if r != want {
		t.Errorf("result = %+v, want %+v", r, want)
	}
}

func TestComputeSimpleIdempotent(t *testing.T) {
	a, errA := ComputeSimple(simpleInput())
	b, errB := ComputeSimple(simpleInput())
	if errA != nil || errB != nil {
		t.Fatalf("errors: %v, %v", errA, errB)
	}
	if math.Float64bits(a.IFaultMax) != math.Float64bits(b.IFaultMax) ||
		math.Float64bits(a.IPrimary) != math.Float64bits(b.IPrimary) ||
		a != b {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
}

func TestCalculateSimpleOverflowIsUnexpected(t *testing.T) {
	_, err := CalculateSimple(SimpleInput{Vp: math.MaxFloat64, Vs: 415, KVA: 1000, ZPct: 6})
	if !errors.Is(err, ErrUnexpected) {
		t.Fatalf("error = %v, want Unexpected", err)
	}
	var fe *Error
	if !errors.As(err, &fe) || fe.Msg == "" {
		t.Errorf("Unexpected error must carry a message, got %#v", err)
	}
}

func TestCalculateSimpleRejectsNaN(t *testing.T) {
	_, err := CalculateSimple(SimpleInput{Vp: math.NaN(), Vs: 415, KVA: 1000, ZPct: 6})
	if KindOf(err) != NotNumeric {
		t.Errorf("kind = %v, want NotNumeric", KindOf(err))
	}
}

func TestSimpleResultView(t *testing.T) {
	r, err := ComputeSimple(simpleInput())
	if err != nil {
		t.Fatal(err)
	}
	res := r.Result()
	if res.Mode != Simple {
		t.Errorf("Mode = %v, want simple", res.Mode)
	}
	if len(res.Inputs) != 4 || len(res.Outputs) != 5 {
		t.Fatalf("got %d inputs, %d outputs; want 4, 5", len(res.Inputs), len(res.Outputs))
	}
	q, ok := res.Output(OutIFaultMax)
	if !ok || q.Value != r.IFaultMax || q.Unit != "A" {
		t.Errorf("Output(%s) = %+v, %v", OutIFaultMax, q, ok)
	}
	in, ok := res.Input(KeyKVA)
	if !ok || in.Value != 1000 || in.Unit != "kVA" {
		t.Errorf("Input(%s) = %+v, %v", KeyKVA, in, ok)
	}
	if _, ok := res.Output("nope"); ok {
		t.Error("Output(nope) should not exist")
	}
}
