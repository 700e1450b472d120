package scene

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveAppliesDefaults(t *testing.T) {
	defs := []ParamDef{
		{Name: "radius", Type: FloatParam, Default: 1.5, Min: 0.1, Max: 5.0},
		{Name: "count", Type: IntParam, Default: 3, Min: 1, Max: 10},
		{Name: "enabled", Type: BoolParam, Default: true},
	}

	p, err := Resolve(defs, Params{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Float("radius") != 1.5 {
		t.Fatalf("expected default radius 1.5; got %v", p.Float("radius"))
	}
	if p.Int("count") != 3 {
		t.Fatalf("expected default count 3; got %v", p.Int("count"))
	}
	if !p.Bool("enabled") {
		t.Fatal("expected default enabled true")
	}
}

func TestResolveMissingRequiredParameter(t *testing.T) {
	defs := []ParamDef{{Name: "radius", Type: FloatParam}}

	_, err := Resolve(defs, Params{})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter; got %v", err)
	}
}

func TestResolveClampsOutOfRange(t *testing.T) {
	defs := []ParamDef{
		{Name: "radius", Type: FloatParam, Default: 1.0, Min: 0.1, Max: 5.0},
		{Name: "count", Type: IntParam, Default: 1, Min: 1, Max: 10},
	}

	p, err := Resolve(defs, Params{"radius": 100.0, "count": -7})
	if err != nil {
		t.Fatal(err)
	}
	if p.Float("radius") != 5.0 {
		t.Fatalf("expected radius clamped to 5.0; got %v", p.Float("radius"))
	}
	if p.Int("count") != 1 {
		t.Fatalf("expected count clamped to 1; got %v", p.Int("count"))
	}
}

func TestResolveIdempotent(t *testing.T) {
	defs := []ParamDef{
		{Name: "radius", Type: FloatParam, Default: 1.0, Min: 0.1, Max: 5.0},
		{Name: "material", Type: ChoiceParam, Default: "diffuse", Choices: []string{"diffuse", "conductor"}},
	}

	first, err := Resolve(defs, Params{"radius": 42.0, "material": "conductor"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve(defs, first)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected resolving twice to be stable; got %v then %v", first, second)
	}
}

func TestResolveDropsUnknownKeys(t *testing.T) {
	defs := []ParamDef{{Name: "radius", Type: FloatParam, Default: 1.0}}

	p, err := Resolve(defs, Params{"radius": 2.0, "bogus": "value"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p["bogus"]; ok {
		t.Fatal("expected unknown key to be dropped")
	}
	if len(p) != 1 {
		t.Fatalf("expected 1 resolved parameter; got %d", len(p))
	}
}

func TestCoerceFailsClosed(t *testing.T) {
	cases := []struct {
		def ParamDef
		in  interface{}
	}{
		{ParamDef{Name: "f", Type: FloatParam}, "0.5"},
		{ParamDef{Name: "i", Type: IntParam}, 1.5},
		{ParamDef{Name: "b", Type: BoolParam}, 1},
		{ParamDef{Name: "c", Type: ChoiceParam, Choices: []string{"a", "b"}}, "z"},
	}
	for _, tc := range cases {
		if _, err := tc.def.Coerce(tc.in); err == nil {
			t.Fatalf("expected %q to reject %#v", tc.def.Name, tc.in)
		}
	}
}

func TestCoerceWidensIntToFloat(t *testing.T) {
	def := ParamDef{Name: "f", Type: FloatParam}
	v, err := def.Coerce(3)
	if err != nil {
		t.Fatal(err)
	}
	if v != 3.0 {
		t.Fatalf("expected 3.0; got %v", v)
	}
}

func TestCoerceAcceptsIntegralFloat(t *testing.T) {
	def := ParamDef{Name: "i", Type: IntParam}
	v, err := def.Coerce(4.0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 4 {
		t.Fatalf("expected 4; got %v", v)
	}
}

func TestClampNoOpInsideRange(t *testing.T) {
	def := ParamDef{Name: "r", Type: FloatParam, Min: 0.1, Max: 5.0}
	if got := def.Clamp(2.5); got != 2.5 {
		t.Fatalf("expected in-range value untouched; got %v", got)
	}
	if got := def.Clamp(def.Clamp(12.0)); got != 5.0 {
		t.Fatalf("expected clamping to be idempotent at 5.0; got %v", got)
	}
}

func TestClampMonotonic(t *testing.T) {
	def := ParamDef{Name: "r", Type: FloatParam, Min: 0.1, Max: 5.0}

	// Raising the raw value never lowers the clamped result, including
	// across the range boundaries.
	inputs := []float64{-100, -1, 0.1, 2.5, 5.0, 7, 100}
	prev := def.Clamp(inputs[0])
	for _, in := range inputs[1:] {
		got := def.Clamp(in)
		if got < prev {
			t.Fatalf("expected clamp to be monotonic; %v clamped to %v after %v", in, got, prev)
		}
		prev = got
	}
}

func TestResolveMonotonicOverRange(t *testing.T) {
	defs := []ParamDef{{Name: "count", Type: IntParam, Default: 1, Min: 1, Max: 10}}

	prev := -1
	for _, in := range []int{-5, 0, 1, 5, 10, 11, 100} {
		p, err := Resolve(defs, Params{"count": in})
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Int("count"); got < prev {
			t.Fatalf("expected resolved values to be monotonic; %d resolved to %d after %d", in, got, prev)
		} else {
			prev = got
		}
	}
}

func TestClampWithoutDeclaredRange(t *testing.T) {
	def := ParamDef{Name: "r", Type: FloatParam}
	if got := def.Clamp(-42.0); got != -42.0 {
		t.Fatalf("expected unbounded parameter untouched; got %v", got)
	}
}

func TestParseTextualValues(t *testing.T) {
	cases := []struct {
		def ParamDef
		in  string
		exp interface{}
	}{
		{ParamDef{Name: "f", Type: FloatParam}, "2.5", 2.5},
		{ParamDef{Name: "i", Type: IntParam}, "7", 7},
		{ParamDef{Name: "b", Type: BoolParam}, "true", true},
		{ParamDef{Name: "c", Type: ChoiceParam, Choices: []string{"a", "b"}}, "b", "b"},
	}
	for _, tc := range cases {
		v, err := tc.def.Parse(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if v != tc.exp {
			t.Fatalf("expected %q to parse to %v; got %v", tc.in, tc.exp, v)
		}
	}

	def := ParamDef{Name: "i", Type: IntParam}
	if _, err := def.Parse("two"); err == nil {
		t.Fatal("expected non-numeric integer to be rejected")
	}
}
