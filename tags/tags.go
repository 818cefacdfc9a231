package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Ground       = donburi.NewTag().SetName("Ground")
	MovingGround = donburi.NewTag().SetName("MovingGround")
)

// ResolvMoving tags colliders that move every frame.
const ResolvMoving = "moving"
