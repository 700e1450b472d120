package scene

// LightingSetups lists the six demonstrated lighting arrangements. The demo
// command renders one image per setup; the GUI exposes them as a choice.
var LightingSetups = []string{"point", "area", "directional", "three_point", "environment", "colored"}

var lightingDefs = []ParamDef{
	{Name: "setup", Label: "Lighting Setup", Type: ChoiceParam, Default: "three_point", Choices: LightingSetups},
	{Name: "key", Label: "Key Light", Type: FloatParam, Default: 60.0, Min: 5.0, Max: 100.0},
	{Name: "fill", Label: "Fill Light", Type: FloatParam, Default: 20.0, Min: 0.0, Max: 50.0},
	{Name: "rim", Label: "Rim/Back Light", Type: FloatParam, Default: 30.0, Min: 0.0, Max: 100.0},
	{Name: "height", Label: "Light Height", Type: FloatParam, Default: 4.0, Min: 1.0, Max: 10.0},
	{Name: "distance", Label: "Light Distance", Type: FloatParam, Default: 4.0, Min: 2.0, Max: 15.0},
}

// NewLightingScene builds the comparison scene, a red sphere against a gray
// floor and back wall, with the selected lighting arrangement applied.
func NewLightingScene(raw Params) (Dict, error) {
	p, err := Resolve(lightingDefs, raw)
	if err != nil {
		return nil, err
	}

	d := Dict{
		"type":       "scene",
		"integrator": pathIntegrator(6),
		"sensor": perspectiveSensor(45, LookAt(
			[3]float64{4, 3, 8},
			[3]float64{0, 0, 0},
			[3]float64{0, 1, 0},
		)),
		"sphere": Dict{
			"type":     "sphere",
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0.8, 0.3, 0.3)},
			"to_world": Translate(0, 0, 0).Scale(1.0).Dict(),
		},
		"ground": Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0.6, 0.6, 0.6)},
			"to_world": Translate(0, -1.5, 0).RotateAxis(1, 0, 0, -90).Scale(8).Dict(),
		},
		"wall": Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0.7, 0.7, 0.8)},
			"to_world": Translate(0, 0, -3).Scale(8).Dict(),
		},
	}

	h, dist := p.Float("height"), p.Float("distance")
	key, fill, rim := p.Float("key"), p.Float("fill"), p.Float("rim")

	switch p.String("setup") {
	case "point":
		d["light"] = pointLight(Spectrum(key), dist*0.75, h, dist)
	case "area":
		d["area_light"] = Dict{
			"type": "rectangle",
			"emitter": Dict{
				"type":     "area",
				"radiance": Rgb(key/4, key/4, key/4),
			},
			"to_world": Translate(2, h, 3).RotateAxis(1, 0, 0, -45).Scale(2).Dict(),
		}
	case "directional":
		d["sun"] = Dict{
			"type":       "directional",
			"direction":  []float64{-1, -1, -1},
			"irradiance": Rgb(key/20, key/20, key/20),
		}
	case "environment":
		d["env"] = Dict{
			"type":     "constant",
			"radiance": Rgb(1.5, 1.5, 1.5),
		}
	case "colored":
		d["light_red"] = pointLight(Rgb(key*1.6, key*0.3, key*0.3), dist*0.6, h*0.75, dist*0.6)
		d["light_blue"] = pointLight(Rgb(key*0.3, key*0.3, key*1.6), -dist*0.6, h*0.75, dist*0.6)
	default: // three_point
		d["key_light"] = pointLight(Spectrum(key), dist*0.8, h, dist*0.8)
		d["fill_light"] = pointLight(Spectrum(fill), -dist*0.6, h/2, dist*0.6)
		d["back_light"] = pointLight(Spectrum(rim), 0, h*0.75, -dist*0.6)
	}
	return d, nil
}

func pointLight(intensity Dict, x, y, z float64) Dict {
	return Dict{
		"type":      "point",
		"intensity": intensity,
		"position":  []float64{x, y, z},
	}
}
