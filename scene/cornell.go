package scene

var cornellDefs = []ParamDef{
	{Name: "box_size", Label: "Box Size", Type: FloatParam, Default: 2.0, Min: 1.0, Max: 5.0},
	{Name: "intensity", Label: "Light Intensity", Type: FloatParam, Default: 15.0, Min: 1.0, Max: 50.0},
	{Name: "light_size", Label: "Light Size", Type: FloatParam, Default: 0.5, Min: 0.1, Max: 1.5},
	{Name: "left_r", Label: "Left Red", Type: FloatParam, Default: 0.63, Min: 0.0, Max: 1.0},
	{Name: "left_g", Label: "Left Green", Type: FloatParam, Default: 0.065, Min: 0.0, Max: 1.0},
	{Name: "left_b", Label: "Left Blue", Type: FloatParam, Default: 0.05, Min: 0.0, Max: 1.0},
	{Name: "right_r", Label: "Right Red", Type: FloatParam, Default: 0.14, Min: 0.0, Max: 1.0},
	{Name: "right_g", Label: "Right Green", Type: FloatParam, Default: 0.45, Min: 0.0, Max: 1.0},
	{Name: "right_b", Label: "Right Blue", Type: FloatParam, Default: 0.091, Min: 0.0, Max: 1.0},
	{Name: "sphere_size", Label: "Sphere Size", Type: FloatParam, Default: 0.4, Min: 0.1, Max: 0.8},
	{Name: "tall_box_size", Label: "Tall Box Size", Type: FloatParam, Default: 0.6, Min: 0.1, Max: 1.0},
}

// NewCornellScene builds the classic global-illumination reference box:
// colored side walls, white floor/ceiling/back, a tall box and a mirror-ish
// sphere inside, lit by a warm ceiling area light. Geometry follows the
// standard 2-unit box and scales uniformly with box_size.
func NewCornellScene(raw Params) (Dict, error) {
	p, err := Resolve(cornellDefs, raw)
	if err != nil {
		return nil, err
	}

	s := p.Float("box_size") / 2 // scale relative to the reference box
	white := Rgb(0.73, 0.73, 0.73)
	inten := p.Float("intensity")

	wall := func(color Dict, t Transform) Dict {
		return Dict{
			"type":     "rectangle",
			"bsdf":     Dict{"type": "diffuse", "reflectance": color},
			"to_world": t.Dict(),
		}
	}

	return Dict{
		"type":       "scene",
		"integrator": pathIntegrator(8),
		"sensor": perspectiveSensor(39.3, LookAt(
			[3]float64{0, s, 3.4 * s},
			[3]float64{0, s, 0},
			[3]float64{0, 1, 0},
		)),
		"back_wall": wall(white, Translate(0, s, -1.99*s).Scale(2*s)),
		"floor":     wall(white, Translate(0, -s, 0).RotateAxis(1, 0, 0, -90).Scale(2*s)),
		"ceiling":   wall(white, Translate(0, 3*s, 0).RotateAxis(1, 0, 0, -90).Scale(2*s)),
		"left_wall": wall(
			Rgb(p.Float("left_r"), p.Float("left_g"), p.Float("left_b")),
			Translate(2*s, s, 0).RotateAxis(0, 1, 0, -90).Scale(2*s),
		),
		"right_wall": wall(
			Rgb(p.Float("right_r"), p.Float("right_g"), p.Float("right_b")),
			Translate(-2*s, s, 0).RotateAxis(0, 1, 0, 90).Scale(2*s),
		),
		"tall_box": Dict{
			"type": "cube",
			"bsdf": Dict{"type": "diffuse", "reflectance": white},
			"to_world": Translate(-0.7*s, -0.15*s, -0.5*s).
				RotateAxis(0, 1, 0, -18).
				ScaleXYZ(p.Float("tall_box_size")*s, 1.65*s, p.Float("tall_box_size")*s).Dict(),
		},
		"sphere": Dict{
			"type": "sphere",
			"bsdf": Dict{"type": "diffuse", "reflectance": white},
			"to_world": Translate(0.7*s, p.Float("sphere_size")*s-s, 0.5*s).
				Scale(p.Float("sphere_size") * s).Dict(),
		},
		"area_light": Dict{
			"type": "rectangle",
			"emitter": Dict{
				"type": "area",
				// Warm white, scaled from the reference radiance.
				"radiance": Rgb(inten*1.227, inten*1.04, inten*0.533),
			},
			"bsdf":     Dict{"type": "diffuse", "reflectance": Rgb(0, 0, 0)},
			"to_world": Translate(0, 2.99*s, 0).RotateAxis(1, 0, 0, -90).Scale(p.Float("light_size") * s).Dict(),
		},
	}, nil
}
