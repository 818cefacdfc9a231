package systems

import "github.com/yohamta/donburi/ecs"

// AddSimulationSystems registers the movement systems in frame order. Input
// polling is left to the caller so scripted input can replace it.
func AddSimulationSystems(e *ecs.ECS) {
	e.AddSystem(UpdateMovingGround)
	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdatePhysics)
}
