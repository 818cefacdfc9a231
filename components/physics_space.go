package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the top-down resolv space indexing walkable surfaces. Singleton.
var Space = donburi.NewComponentType[resolv.Space]()
