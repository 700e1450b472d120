package gui

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/lumen-render/lumen/scene"
)

func testDefs() []scene.ParamDef {
	return []scene.ParamDef{
		{Name: "radius", Label: "Radius", Type: scene.FloatParam, Default: 1.0, Min: 0.1, Max: 5.0},
		{Name: "count", Label: "Count", Type: scene.IntParam, Default: 3, Min: 1, Max: 10},
		{Name: "material", Label: "Material", Type: scene.ChoiceParam, Default: "diffuse",
			Choices: []string{"diffuse", "conductor"}},
		{Name: "enabled", Label: "Enabled", Type: scene.BoolParam, Default: true},
	}
}

func TestControlsStartAtDefaults(t *testing.T) {
	test.NewApp()

	controls := newControlSet(testDefs())
	controls.form(nil)

	p := controls.params()
	if p.Float("radius") != 1.0 {
		t.Fatalf("expected default radius 1.0; got %v", p.Float("radius"))
	}
	if p.Int("count") != 3 {
		t.Fatalf("expected default count 3; got %v", p.Int("count"))
	}
	if p.String("material") != "diffuse" {
		t.Fatalf("expected default material diffuse; got %v", p.String("material"))
	}
	if !p.Bool("enabled") {
		t.Fatal("expected default enabled true")
	}
}

func TestControlsRoundTrip(t *testing.T) {
	test.NewApp()

	controls := newControlSet(testDefs())
	controls.form(nil)

	in := scene.Params{
		"radius":   2.5,
		"count":    7,
		"material": "conductor",
		"enabled":  false,
	}
	controls.set(in)

	out := controls.params()
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("expected controls to round-trip %v; got %v", in, out)
	}

	// Feeding the marshaled state back leaves the controls unchanged.
	controls.set(out)
	if again := controls.params(); !reflect.DeepEqual(again, out) {
		t.Fatalf("expected round-trip to be stable; got %v then %v", out, again)
	}
}

func TestControlParamsBuildScenes(t *testing.T) {
	test.NewApp()

	for _, kind := range scene.Kinds() {
		controls := newControlSet(kind.Defs())
		controls.form(nil)
		if _, err := kind.Build(controls.params()); err != nil {
			t.Fatalf("%s: controls produced unbuildable params: %v", kind, err)
		}
	}
}
