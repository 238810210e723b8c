package config

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// ToCtyValue converts a decoded scalar (as produced by the TOML and YAML
// decoders) into its cty equivalent.
func ToCtyValue(v any) (cty.Value, error) {
	switch t := v.(type) {
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberVal(new(big.Float).SetUint64(t)), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	return cty.NilVal, fmt.Errorf("unsupported parameter value of type %T", v)
}

// ToCtyParams converts a decoded parameter table.
func ToCtyParams(raw map[string]any) (map[string]cty.Value, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]cty.Value, len(raw))
	for name, v := range raw {
		cv, err := ToCtyValue(v)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		out[name] = cv
	}
	return out, nil
}
