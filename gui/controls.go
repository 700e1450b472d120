package gui

import (
	"fmt"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/lumen-render/lumen/scene"
)

// controlSet generates interactive widgets from a scene's parameter
// definitions and marshals their state back into a flat Params map. The
// transform is one-directional and stateless; type and range metadata come
// from the definitions, never from widget state.
type controlSet struct {
	defs    []scene.ParamDef
	sliders map[string]*widget.Slider
	selects map[string]*widget.Select
	checks  map[string]*widget.Check
	entries map[string]*widget.Entry
}

func newControlSet(defs []scene.ParamDef) *controlSet {
	return &controlSet{
		defs:    defs,
		sliders: make(map[string]*widget.Slider),
		selects: make(map[string]*widget.Select),
		checks:  make(map[string]*widget.Check),
		entries: make(map[string]*widget.Entry),
	}
}

// form lays out one labelled control per parameter definition.
func (c *controlSet) form(onChange func()) *widget.Form {
	form := widget.NewForm()
	for _, def := range c.defs {
		def := def
		switch def.Type {
		case scene.FloatParam, scene.IntParam:
			slider := widget.NewSlider(def.Min, def.Max)
			if def.Type == scene.IntParam {
				slider.Step = 1
			} else {
				slider.Step = (def.Max - def.Min) / 100
			}

			value := widget.NewLabel("")
			display := func(v float64) {
				if def.Type == scene.IntParam {
					value.SetText(fmt.Sprintf("%d", int(v)))
				} else {
					value.SetText(fmt.Sprintf("%.2f", v))
				}
			}
			slider.OnChanged = func(v float64) {
				display(v)
				if onChange != nil {
					onChange()
				}
			}

			switch t := def.Default.(type) {
			case float64:
				slider.SetValue(t)
			case int:
				slider.SetValue(float64(t))
			}
			display(slider.Value)

			c.sliders[def.Name] = slider
			form.Append(def.Label, container.NewBorder(nil, nil, nil, value, slider))

		case scene.ChoiceParam:
			sel := widget.NewSelect(def.Choices, func(string) {
				if onChange != nil {
					onChange()
				}
			})
			if t, ok := def.Default.(string); ok {
				sel.SetSelected(t)
			}
			c.selects[def.Name] = sel
			form.Append(def.Label, sel)

		case scene.BoolParam:
			check := widget.NewCheck("", func(bool) {
				if onChange != nil {
					onChange()
				}
			})
			if t, ok := def.Default.(bool); ok {
				check.SetChecked(t)
			}
			c.checks[def.Name] = check
			form.Append(def.Label, check)

		case scene.StringParam:
			entry := widget.NewEntry()
			if t, ok := def.Default.(string); ok {
				entry.SetText(t)
			}
			c.entries[def.Name] = entry
			form.Append(def.Label, entry)
		}
	}
	return form
}

// params marshals the current control state into the flat parameter map
// consumed by the scene builders.
func (c *controlSet) params() scene.Params {
	p := make(scene.Params, len(c.defs))
	for _, def := range c.defs {
		switch def.Type {
		case scene.FloatParam:
			p[def.Name] = c.sliders[def.Name].Value
		case scene.IntParam:
			p[def.Name] = int(c.sliders[def.Name].Value)
		case scene.ChoiceParam:
			p[def.Name] = c.selects[def.Name].Selected
		case scene.BoolParam:
			p[def.Name] = c.checks[def.Name].Checked
		case scene.StringParam:
			p[def.Name] = c.entries[def.Name].Text
		}
	}
	return p
}

// set pushes parameter values back into the controls. Feeding params
// obtained from the same controls reproduces the identical control state.
func (c *controlSet) set(p scene.Params) {
	for _, def := range c.defs {
		v, ok := p[def.Name]
		if !ok {
			continue
		}
		switch def.Type {
		case scene.FloatParam:
			if t, ok := v.(float64); ok {
				c.sliders[def.Name].SetValue(t)
			}
		case scene.IntParam:
			if t, ok := v.(int); ok {
				c.sliders[def.Name].SetValue(float64(t))
			}
		case scene.ChoiceParam:
			if t, ok := v.(string); ok {
				c.selects[def.Name].SetSelected(t)
			}
		case scene.BoolParam:
			if t, ok := v.(bool); ok {
				c.checks[def.Name].SetChecked(t)
			}
		case scene.StringParam:
			if t, ok := v.(string); ok {
				c.entries[def.Name].SetText(t)
			}
		}
	}
}
