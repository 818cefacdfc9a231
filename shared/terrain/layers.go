package terrain

import (
	"fmt"
	"strings"
)

// Layer is a single collision layer bit.
type Layer uint32

// LayerMask selects a set of layers for queries.
type LayerMask uint32

const (
	LayerGround   Layer = 1 << 0
	LayerPlatform Layer = 1 << 1
	LayerWater    Layer = 1 << 2

	MaskNone LayerMask = 0
	MaskAll  LayerMask = ^LayerMask(0)
)

var layerNames = map[string]Layer{
	"ground":   LayerGround,
	"platform": LayerPlatform,
	"water":    LayerWater,
}

// ParseLayer resolves a layer by name. An empty name is the ground layer.
func ParseLayer(name string) (Layer, error) {
	if name == "" {
		return LayerGround, nil
	}
	l, ok := layerNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// ParseMask builds a mask from layer names.
func ParseMask(names []string) (LayerMask, error) {
	var m LayerMask
	for _, n := range names {
		l, err := ParseLayer(n)
		if err != nil {
			return MaskNone, err
		}
		m |= LayerMask(l)
	}
	return m, nil
}

// Contains reports whether l is selected by the mask.
func (m LayerMask) Contains(l Layer) bool {
	return m&LayerMask(l) != 0
}
