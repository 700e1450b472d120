package scene

// Parameters for the basic demo: a single sphere over a ground plane lit by
// a point light. Ranges mirror the interactive sliders.
var basicDefs = []ParamDef{
	{Name: "radius", Label: "Radius", Type: FloatParam, Default: 1.0, Min: 0.1, Max: 5.0, Help: "Sphere radius"},
	{Name: "pos_x", Label: "Position X", Type: FloatParam, Default: 0.0, Min: -5.0, Max: 5.0},
	{Name: "pos_y", Label: "Position Y", Type: FloatParam, Default: 0.0, Min: -5.0, Max: 5.0},
	{Name: "pos_z", Label: "Position Z", Type: FloatParam, Default: 0.0, Min: -2.0, Max: 5.0},
	{Name: "material", Label: "Material", Type: ChoiceParam, Default: "diffuse",
		Choices: []string{"diffuse", "conductor", "roughconductor", "dielectric", "plastic"}},
	{Name: "roughness", Label: "Roughness", Type: FloatParam, Default: 0.1, Min: 0.0, Max: 1.0,
		Help: "Microfacet roughness for rough conductors"},
	{Name: "color_r", Label: "Color Red", Type: FloatParam, Default: 0.8, Min: 0.0, Max: 1.0},
	{Name: "color_g", Label: "Color Green", Type: FloatParam, Default: 0.1, Min: 0.0, Max: 1.0},
	{Name: "color_b", Label: "Color Blue", Type: FloatParam, Default: 0.1, Min: 0.0, Max: 1.0},
	{Name: "light_intensity", Label: "Light Intensity", Type: FloatParam, Default: 100.0, Min: 1.0, Max: 500.0},
	{Name: "distance", Label: "Camera Distance", Type: FloatParam, Default: 5.0, Min: 2.0, Max: 20.0},
	{Name: "fov", Label: "Field of View", Type: FloatParam, Default: 45.0, Min: 20.0, Max: 90.0},
}

// NewBasicScene builds the first-steps demo scene: one sphere with a
// selectable material, a gray ground plane and a point light.
func NewBasicScene(raw Params) (Dict, error) {
	p, err := Resolve(basicDefs, raw)
	if err != nil {
		return nil, err
	}

	color := [3]float64{p.Float("color_r"), p.Float("color_g"), p.Float("color_b")}

	return Dict{
		"type":       "scene",
		"integrator": pathIntegrator(6),
		"sensor": perspectiveSensor(p.Float("fov"), LookAt(
			[3]float64{0, 0, p.Float("distance")},
			[3]float64{0, 0, 0},
			[3]float64{0, 1, 0},
		)),
		"sphere": Dict{
			"type": "sphere",
			"bsdf": materialBSDF(p.String("material"), color, p.Float("roughness")),
			"to_world": Translate(p.Float("pos_x"), p.Float("pos_y"), p.Float("pos_z")).
				Scale(p.Float("radius")).Dict(),
		},
		"ground": Dict{
			"type": "rectangle",
			"bsdf": Dict{
				"type":        "diffuse",
				"reflectance": Rgb(0.8, 0.8, 0.8),
			},
			"to_world": Translate(0, -1, 0).RotateAxis(1, 0, 0, -90).Scale(5).Dict(),
		},
		"light": Dict{
			"type":      "point",
			"intensity": Spectrum(p.Float("light_intensity")),
			"position":  []float64{5, 5, 5},
		},
	}, nil
}

// materialBSDF maps a material choice to its BSDF entry. Color only applies
// to the material kinds that take one.
func materialBSDF(material string, color [3]float64, roughness float64) Dict {
	switch material {
	case "conductor":
		return Dict{"type": "conductor", "material": "Au"}
	case "roughconductor":
		return Dict{"type": "roughconductor", "material": "Cu", "alpha": roughness}
	case "dielectric":
		return Dict{"type": "dielectric"}
	case "plastic":
		return Dict{
			"type":                "plastic",
			"diffuse_reflectance": Rgb(color[0], color[1], color[2]),
			"nonlinear":           true,
		}
	default:
		return Dict{
			"type":        "diffuse",
			"reflectance": Rgb(color[0], color[1], color[2]),
		}
	}
}

// NewQuickStart builds the minimal scene rendered by the quick-start demo:
// the basic scene with every parameter at its documented default.
func NewQuickStart() (Dict, error) {
	return NewBasicScene(Params{})
}
