package scene

var glassDefs = []ParamDef{
	{Name: "object", Label: "Glass Object", Type: ChoiceParam, Default: "sphere", Choices: []string{"sphere", "cube"}},
	{Name: "ior", Label: "Index of Refraction", Type: FloatParam, Default: 1.5, Min: 1.0, Max: 2.5,
		Help: "1.33 water, 1.5 glass, 2.42 diamond"},
	{Name: "tint_r", Label: "Red Tint", Type: FloatParam, Default: 1.0, Min: 0.5, Max: 1.0},
	{Name: "tint_g", Label: "Green Tint", Type: FloatParam, Default: 1.0, Min: 0.5, Max: 1.0},
	{Name: "tint_b", Label: "Blue Tint", Type: FloatParam, Default: 1.0, Min: 0.5, Max: 1.0},
	{Name: "intensity", Label: "Light Intensity", Type: FloatParam, Default: 20.0, Min: 5.0, Max: 50.0},
	{Name: "height", Label: "Light Height", Type: FloatParam, Default: 5.0, Min: 2.0, Max: 8.0},
	{Name: "background", Label: "Background", Type: ChoiceParam, Default: "white", Choices: []string{"white", "colored", "dark"}},
	{Name: "show_caustics", Label: "Caustic Plane", Type: BoolParam, Default: true,
		Help: "Bright plane under the object to make caustics visible"},
}

// NewGlassScene builds the refraction demo: a dielectric object above a
// floor, lit by a small area light so the focused caustic is visible. Glass
// needs many bounces, so the integrator depth is the highest of the demos.
func NewGlassScene(raw Params) (Dict, error) {
	p, err := Resolve(glassDefs, raw)
	if err != nil {
		return nil, err
	}

	bsdf := Dict{
		"type":    "dielectric",
		"int_ior": p.Float("ior"),
		"specular_transmittance": Rgb(
			p.Float("tint_r"), p.Float("tint_g"), p.Float("tint_b"),
		),
	}

	var object Dict
	if p.String("object") == "cube" {
		object = Dict{
			"type":     "cube",
			"bsdf":     bsdf,
			"to_world": Translate(0, 0, 0).RotateAxis(0, 1, 0, 25).Scale(1.1).Dict(),
		}
	} else {
		object = Dict{
			"type":     "sphere",
			"bsdf":     bsdf,
			"to_world": Translate(0, 0, 0).Scale(1.5).Dict(),
		}
	}

	var floorColor, wallColor Dict
	switch p.String("background") {
	case "colored":
		floorColor = Rgb(0.85, 0.8, 0.7)
		wallColor = Rgb(0.4, 0.5, 0.75)
	case "dark":
		floorColor = Rgb(0.2, 0.2, 0.2)
		wallColor = Rgb(0.1, 0.1, 0.12)
	default:
		floorColor = Rgb(0.9, 0.9, 0.9)
		wallColor = Rgb(0.85, 0.85, 0.85)
	}

	inten := p.Float("intensity")
	d := Dict{
		"type":       "scene",
		"integrator": pathIntegrator(12),
		"sensor": perspectiveSensor(40, LookAt(
			[3]float64{4, 3, 8},
			[3]float64{0, 0, 0},
			[3]float64{0, 1, 0},
		)),
		"glass_object": object,
		"floor": Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": floorColor},
			"to_world": Translate(0, -2, 0).RotateAxis(1, 0, 0, -90).Scale(12).Dict(),
		},
		"back_wall": Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": wallColor},
			"to_world": Translate(0, 0, -5).Scale(12).Dict(),
		},
		"key_light": Dict{
			"type": "rectangle",
			"emitter": Dict{
				"type":     "area",
				"radiance": Rgb(inten, inten, inten*0.95),
			},
			"to_world": Translate(2, p.Float("height"), 2).RotateAxis(1, 0, 0, -60).Scale(1.2).Dict(),
		},
		"env": Dict{
			"type":     "constant",
			"radiance": Rgb(0.15, 0.15, 0.18),
		},
	}

	if p.Bool("show_caustics") {
		// A bright matte plane directly under the object catches the
		// focused light.
		d["caustic_plane"] = Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0.95, 0.95, 0.95)},
			"to_world": Translate(0, -1.99, 0).RotateAxis(1, 0, 0, -90).Scale(3).Dict(),
		}
	}
	return d, nil
}
