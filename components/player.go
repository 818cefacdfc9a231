package components

import (
	"github.com/automoto/runslide/shared/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnPosition mgl64.Vec3
	SpawnYaw      float64

	GroundHit terrain.Hit // last grounded ray result, zero when airborne
	LastForce mgl64.Vec3  // movement force applied in the latest physics step
	Respawns  int
}

var Player = donburi.NewComponentType[PlayerData]()

// OrientationData is the orientation reference movement is relative to.
type OrientationData struct {
	Yaw float64 // radians around world up; 0 faces +Z
}

var Orientation = donburi.NewComponentType[OrientationData]()
