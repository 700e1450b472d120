package scene

import "fmt"

var materialsDefs = []ParamDef{
	{Name: "roughness", Label: "Copper Roughness", Type: FloatParam, Default: 0.3, Min: 0.0, Max: 1.0,
		Help: "Alpha of the rough copper sphere"},
	{Name: "spacing", Label: "Sphere Spacing", Type: FloatParam, Default: 2.0, Min: 1.0, Max: 3.0},
	{Name: "light_radiance", Label: "Area Light Radiance", Type: FloatParam, Default: 20.0, Min: 1.0, Max: 50.0},
	{Name: "side_intensity", Label: "Side Light Intensity", Type: FloatParam, Default: 50.0, Min: 0.0, Max: 200.0},
}

// showcaseMaterials lists the five demonstrated surface types in display
// order, left to right.
var showcaseMaterials = []Dict{
	{"type": "diffuse", "reflectance": Dict{"type": "rgb", "value": []float64{0.8, 0.1, 0.1}}},
	{"type": "conductor", "material": "Au"},
	{"type": "roughconductor", "material": "Cu"}, // alpha filled in per render
	{"type": "dielectric"},
	{"type": "plastic", "diffuse_reflectance": Dict{"type": "rgb", "value": []float64{0.1, 0.3, 0.8}}, "nonlinear": true},
}

// NewMaterialsShowcase builds a row of five spheres, one per material type,
// under an area light with a point fill from the side.
func NewMaterialsShowcase(raw Params) (Dict, error) {
	p, err := Resolve(materialsDefs, raw)
	if err != nil {
		return nil, err
	}

	radiance := p.Float("light_radiance")
	d := Dict{
		"type":       "scene",
		"integrator": pathIntegrator(8),
		"sensor": perspectiveSensor(45, LookAt(
			[3]float64{0, 1, 8},
			[3]float64{0, 0, 0},
			[3]float64{0, 1, 0},
		)),
		"ground": Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0.7, 0.7, 0.7)},
			"to_world": Translate(0, -1.5, 0).RotateAxis(1, 0, 0, -90).Scale(10).Dict(),
		},
		"backwall": Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0.8, 0.8, 0.9)},
			"to_world": Translate(0, 0, -3).Scale(10).Dict(),
		},
		"area_light": Dict{
			"type": "rectangle",
			"emitter": Dict{
				"type":     "area",
				"radiance": Rgb(radiance, radiance, radiance),
			},
			"to_world": Translate(0, 4, 0).RotateAxis(1, 0, 0, -90).Scale(3).Dict(),
		},
		"light_side": Dict{
			"type":      "point",
			"intensity": Spectrum(p.Float("side_intensity")),
			"position":  []float64{-5, 2, 3},
		},
	}

	spacing := p.Float("spacing")
	offset := spacing * float64(len(showcaseMaterials)-1) / 2
	for i, mat := range showcaseMaterials {
		bsdf := mat.Clone()
		if bsdf["type"] == "roughconductor" {
			bsdf["alpha"] = p.Float("roughness")
		}
		d[fmt.Sprintf("sphere_%d", i)] = Dict{
			"type":     "sphere",
			"bsdf":     bsdf,
			"to_world": Translate(float64(i)*spacing-offset, 0, 0).Scale(1.0).Dict(),
		}
	}
	return d, nil
}
