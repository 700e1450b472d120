package scene

import "fmt"

// Kind identifies one of the demo scenes. It is a closed set: each kind
// maps to exactly one builder function and one GUI tab.
type Kind int

const (
	BasicScene Kind = iota
	MaterialsShowcase
	LightingTechniques
	GlassDemo
	CornellBox
)

// Kinds returns all demo scene kinds in display order.
func Kinds() []Kind {
	return []Kind{BasicScene, MaterialsShowcase, LightingTechniques, GlassDemo, CornellBox}
}

// String returns the stable machine name, used for CLI arguments and output
// file names.
func (k Kind) String() string {
	switch k {
	case BasicScene:
		return "basic"
	case MaterialsShowcase:
		return "materials"
	case LightingTechniques:
		return "lighting"
	case GlassDemo:
		return "glass"
	case CornellBox:
		return "cornell"
	}
	return "unknown"
}

// Title returns the human-readable scene name.
func (k Kind) Title() string {
	switch k {
	case BasicScene:
		return "Basic Scene"
	case MaterialsShowcase:
		return "Materials Showcase"
	case LightingTechniques:
		return "Lighting Techniques"
	case GlassDemo:
		return "Glass & Caustics"
	case CornellBox:
		return "Cornell Box"
	}
	return "Unknown"
}

// ParseKind resolves a machine name back to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("scene: unknown scene %q", name)
}

// Defs returns the parameter definitions for this scene kind.
func (k Kind) Defs() []ParamDef {
	switch k {
	case BasicScene:
		return basicDefs
	case MaterialsShowcase:
		return materialsDefs
	case LightingTechniques:
		return lightingDefs
	case GlassDemo:
		return glassDefs
	case CornellBox:
		return cornellDefs
	}
	return nil
}

// Build dispatches to the builder function for this scene kind.
func (k Kind) Build(p Params) (Dict, error) {
	switch k {
	case BasicScene:
		return NewBasicScene(p)
	case MaterialsShowcase:
		return NewMaterialsShowcase(p)
	case LightingTechniques:
		return NewLightingScene(p)
	case GlassDemo:
		return NewGlassScene(p)
	case CornellBox:
		return NewCornellScene(p)
	}
	return nil, fmt.Errorf("scene: unknown kind %d", int(k))
}

// perspectiveSensor assembles the sensor entry shared by all builders. Film
// resolution and sample count carry placeholder defaults; the render options
// overwrite them before invocation.
func perspectiveSensor(fov float64, toWorld Transform) Dict {
	return Dict{
		"type": "perspective",
		"fov":  fov,
		"film": Dict{
			"type":    "hdrfilm",
			"width":   512,
			"height":  512,
			"rfilter": Dict{"type": "gaussian"},
		},
		"sampler": Dict{
			"type":         "independent",
			"sample_count": 64,
		},
		"to_world": toWorld.Dict(),
	}
}

func pathIntegrator(maxDepth int) Dict {
	return Dict{
		"type":      "path",
		"max_depth": maxDepth,
	}
}
