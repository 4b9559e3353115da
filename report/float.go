package report

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Float is a float64 that keeps a decimal point when written as YAML, so
// integral values such as 48000 are still read back as floats.
type Float float64

// node returns the tagged scalar node of f.
func (f Float) node() *yaml.Node {
	v := float64(f)

	var s string
	switch {
	case math.IsNaN(v):
		s = ".nan"
	case math.IsInf(v, 1):
		s = ".inf"
	case math.IsInf(v, -1):
		s = "-.inf"
	default:
		s = strconv.FormatFloat(v, 'f', -1, 64)
		// Integral values would otherwise be read back as integers
		if !strings.Contains(s, ".") {
			s += ".0"
		}
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}

// MarshalYAML implements yaml.Marshaler.
func (f Float) MarshalYAML() (interface{}, error) {
	return f.node(), nil
}

// MarshalYAML implements yaml.Marshaler.
// Planes are written with sorted, unquoted keys. The default encoder quotes
// "Y" because YAML 1.1 reads it as a boolean.
func (p Planes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, plane := range []struct {
		key   string
		value Float
	}{
		{"U", p.U},
		{"V", p.V},
		{"Y", p.Y},
	} {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: plane.key},
			plane.value.node(),
		)
	}
	return node, nil
}
