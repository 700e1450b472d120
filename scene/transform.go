package scene

// Transform accumulates affine operations and materializes them into the
// nested {"type": ..., "child": ...} dictionaries the worker converts into
// renderer transform objects. Operations apply right to left: the last
// method in a chain acts on the object first, matching the renderer's
// translate().rotate().scale() composition order.
type Transform struct {
	ops []Dict
}

// Identity returns the empty transform.
func Identity() Transform {
	return Transform{}
}

// Translate starts a transform chain with a translation.
func Translate(x, y, z float64) Transform {
	return Transform{}.Translate(x, y, z)
}

// LookAt starts a transform chain with a camera orientation.
func LookAt(origin, target, up [3]float64) Transform {
	return Transform{}.append(Dict{
		"type":   "look_at",
		"origin": []float64{origin[0], origin[1], origin[2]},
		"target": []float64{target[0], target[1], target[2]},
		"up":     []float64{up[0], up[1], up[2]},
	})
}

// Translate appends a translation.
func (t Transform) Translate(x, y, z float64) Transform {
	return t.append(Dict{"type": "translate", "value": []float64{x, y, z}})
}

// RotateAxis appends a rotation of angle degrees around the given axis.
func (t Transform) RotateAxis(x, y, z, angle float64) Transform {
	return t.append(Dict{"type": "rotate", "axis": []float64{x, y, z}, "angle": angle})
}

// Scale appends a uniform scale.
func (t Transform) Scale(s float64) Transform {
	return t.append(Dict{"type": "scale", "value": s})
}

// ScaleXYZ appends a per-axis scale.
func (t Transform) ScaleXYZ(x, y, z float64) Transform {
	return t.append(Dict{"type": "scale", "value": []float64{x, y, z}})
}

func (t Transform) append(op Dict) Transform {
	ops := make([]Dict, len(t.ops), len(t.ops)+1)
	copy(ops, t.ops)
	return Transform{ops: append(ops, op)}
}

// Dict nests the accumulated operations, first operation outermost. An empty
// chain yields the identity transform.
func (t Transform) Dict() Dict {
	if len(t.ops) == 0 {
		return Dict{"type": "identity"}
	}
	root := t.ops[0].Clone()
	node := root
	for _, op := range t.ops[1:] {
		child := op.Clone()
		node["child"] = child
		node = child
	}
	return root
}
