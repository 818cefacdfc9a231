package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

var Tween = donburi.NewComponentType[gween.Sequence]()

// MovingGroundData says which property of a surface its tween drives. The
// tween value is an offset from the base placement.
type MovingGroundData struct {
	Axis    string // "y" moves the surface top, "x" and "z" slide the footprint
	BaseX   float64
	BaseZ   float64
	BaseTop float64
	Offset  float64 // last applied offset
}

var MovingGround = donburi.NewComponentType[MovingGroundData]()
