package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrMissingParameter = errors.New("scene: missing parameter")

// Params is the flat parameter mapping consumed by the scene builders.
type Params map[string]interface{}

// ParamType enumerates the control value types a builder understands.
type ParamType int

const (
	FloatParam ParamType = iota
	IntParam
	BoolParam
	ChoiceParam
	StringParam
)

// ParamDef declares one builder parameter: its type, documented default and
// valid range. A nil Default marks the parameter as required.
type ParamDef struct {
	Name    string
	Label   string
	Type    ParamType
	Default interface{}
	Min     float64
	Max     float64
	Choices []string
	Help    string
}

// Clamp restricts a numeric value to the declared range. Clamping an
// in-range value is a no-op.
func (d ParamDef) Clamp(v float64) float64 {
	if d.Min == 0 && d.Max == 0 {
		return v
	}
	return math.Min(math.Max(v, d.Min), d.Max)
}

// Coerce validates a raw value against the declared type. Coercion fails
// closed: values of the wrong type are rejected, never guessed at. The only
// accepted widening is exact integer to float.
func (d ParamDef) Coerce(v interface{}) (interface{}, error) {
	switch d.Type {
	case FloatParam:
		switch t := v.(type) {
		case float64:
			return t, nil
		case float32:
			return float64(t), nil
		case int:
			return float64(t), nil
		}
	case IntParam:
		switch t := v.(type) {
		case int:
			return t, nil
		case float64:
			if t == math.Trunc(t) {
				return int(t), nil
			}
		}
	case BoolParam:
		if t, ok := v.(bool); ok {
			return t, nil
		}
	case ChoiceParam:
		if t, ok := v.(string); ok {
			for _, c := range d.Choices {
				if t == c {
					return t, nil
				}
			}
			return nil, fmt.Errorf("scene: parameter %q: %q is not one of %v", d.Name, t, d.Choices)
		}
	case StringParam:
		if t, ok := v.(string); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("scene: parameter %q: cannot accept %T value", d.Name, v)
}

// Parse converts a textual value, e.g. from a command-line override, into
// the declared type. Range clamping still happens in Resolve.
func (d ParamDef) Parse(s string) (interface{}, error) {
	switch d.Type {
	case FloatParam:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("scene: parameter %q: %q is not a number", d.Name, s)
		}
		return v, nil
	case IntParam:
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("scene: parameter %q: %q is not an integer", d.Name, s)
		}
		return v, nil
	case BoolParam:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("scene: parameter %q: %q is not a boolean", d.Name, s)
		}
		return v, nil
	default:
		return d.Coerce(s)
	}
}

// Resolve normalizes raw parameters against a definition list: defaults are
// substituted for absent entries, types are coerced fail-closed and numeric
// values are clamped to their documented ranges. A required parameter with
// no default yields ErrMissingParameter. Unknown keys are dropped.
func Resolve(defs []ParamDef, raw Params) (Params, error) {
	out := make(Params, len(defs))
	for _, def := range defs {
		v, ok := raw[def.Name]
		if !ok {
			if def.Default == nil {
				return nil, fmt.Errorf("%w: %q", ErrMissingParameter, def.Name)
			}
			v = def.Default
		}

		cv, err := def.Coerce(v)
		if err != nil {
			return nil, err
		}
		switch def.Type {
		case FloatParam:
			cv = def.Clamp(cv.(float64))
		case IntParam:
			cv = int(def.Clamp(float64(cv.(int))))
		}
		out[def.Name] = cv
	}
	return out, nil
}

// Typed accessors for resolved parameter maps. They assume Resolve has run
// and fall back to zero values otherwise.

func (p Params) Float(name string) float64 {
	v, _ := p[name].(float64)
	return v
}

func (p Params) Int(name string) int {
	v, _ := p[name].(int)
	return v
}

func (p Params) Bool(name string) bool {
	v, _ := p[name].(bool)
	return v
}

func (p Params) String(name string) string {
	v, _ := p[name].(string)
	return v
}
