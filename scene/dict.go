// Package scene builds declarative scene descriptions in the nested
// dictionary schema consumed by the external render worker. Builders are
// pure: they touch no filesystem, network or global state.
package scene

// Dict is a nested scene description. The schema is owned by the external
// renderer; this package only guarantees the structural shape of what it
// emits, never physical plausibility.
type Dict map[string]interface{}

// Clone returns a deep copy. Nested Dicts and value slices are copied,
// scalar leaves are shared.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case Dict:
		return t.Clone()
	case map[string]interface{}:
		return Dict(t).Clone()
	case []interface{}:
		cp := make([]interface{}, len(t))
		for i, e := range t {
			cp[i] = cloneValue(e)
		}
		return cp
	case []float64:
		cp := make([]float64, len(t))
		copy(cp, t)
		return cp
	default:
		return v
	}
}

// Sub returns a nested Dict, or nil when the key is absent or not a Dict.
func (d Dict) Sub(key string) Dict {
	switch t := d[key].(type) {
	case Dict:
		return t
	case map[string]interface{}:
		return Dict(t)
	default:
		return nil
	}
}

// Rgb builds an rgb-typed spectrum entry.
func Rgb(r, g, b float64) Dict {
	return Dict{"type": "rgb", "value": []float64{r, g, b}}
}

// Spectrum builds a uniform spectrum entry.
func Spectrum(value float64) Dict {
	return Dict{"type": "spectrum", "value": value}
}
