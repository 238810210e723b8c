package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParamDef declares a parameter a puzzle's solvers accept.
type ParamDef struct {
	Name        string
	Type        cty.Type
	Default     cty.Value
	Description string
}

// IntParam declares a numeric parameter with a default.
func IntParam(name string, def int, description string) ParamDef {
	return ParamDef{Name: name, Type: cty.Number, Default: cty.NumberIntVal(int64(def)), Description: description}
}

// StringParam declares a string parameter with a default.
func StringParam(name, def, description string) ParamDef {
	return ParamDef{Name: name, Type: cty.String, Default: cty.StringVal(def), Description: description}
}

// Params is the bound, type-checked parameter set handed to a solver.
type Params struct {
	values map[string]cty.Value
}

// BindParams merges manifest-supplied values over the declared defaults and
// converts each to its declared type. Undeclared names are rejected.
func (p *Puzzle) BindParams(given map[string]cty.Value) (Params, error) {
	defs := make(map[string]ParamDef, len(p.Params))
	for _, d := range p.Params {
		defs[d.Name] = d
	}

	var unknown []string
	for name := range given {
		if _, ok := defs[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Params{}, fmt.Errorf("puzzle '%s' does not accept param(s): %s", p.ID, strings.Join(unknown, ", "))
	}

	values := make(map[string]cty.Value, len(defs))
	for name, d := range defs {
		v, ok := given[name]
		if !ok || v.IsNull() {
			v = d.Default
		}
		converted, err := convert.Convert(v, d.Type)
		if err != nil {
			return Params{}, fmt.Errorf("puzzle '%s', param '%s': requires %s: %w", p.ID, name, d.Type.FriendlyName(), err)
		}
		values[name] = converted
	}
	return Params{values: values}, nil
}

// Int returns a numeric parameter as an int.
func (p Params) Int(name string) (int, error) {
	v, ok := p.values[name]
	if !ok {
		return 0, fmt.Errorf("param '%s' is not declared", name)
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, fmt.Errorf("param '%s': %w", name, err)
	}
	return n, nil
}

// String returns a string parameter.
func (p Params) String(name string) (string, error) {
	v, ok := p.values[name]
	if !ok {
		return "", fmt.Errorf("param '%s' is not declared", name)
	}
	var s string
	if err := gocty.FromCtyValue(v, &s); err != nil {
		return "", fmt.Errorf("param '%s': %w", name, err)
	}
	return s, nil
}
