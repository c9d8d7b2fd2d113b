package runner

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/gm"
)

// the simulation is unstable with huge steps, e.g. after the window was dragged
const maxStepSecs = 1.0 / 20.0

type physicsSpace struct {
	Space *cp.Space
}

// Player is the ball controlled by the user.
type Player struct {
	Radius float64

	body *cp.Body
}

func setupPhysicsSystem(world *phases.World) {
	cfg := settingsOf(world).Config

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	world.InsertResource(physicsSpace{Space: space})
}

func teardownPhysicsSystem(world *phases.World) {
	phases.RemoveResource[physicsSpace](world)
}

func newPlayer(space *cp.Space, position gm.Vec, radius float64) Player {
	const mass = 1.0

	body := space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: position.X, Y: position.Y})

	space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))

	return Player{Radius: radius, body: body}
}

func flapSystem(world *phases.World) {
	opts := settingsOf(world)

	if !opts.Input.JustActivated(phases.ControlAction) {
		return
	}

	_, player, ok := phases.Single[Player](world)
	if !ok {
		return
	}

	velocity := player.body.Velocity()
	player.body.SetVelocity(velocity.X, -opts.Config.FlapImpulse)
}

func stepPhysicsSystem(world *phases.World) {
	space := phases.MustResourceOf[physicsSpace](world).Space
	dt := min(phases.MustResourceOf[phases.Time](world).DeltaSecs, maxStepSecs)

	if dt > 0 {
		space.Step(dt)
	}

	// sync the simulation back to the scene
	for entityId, player := range phases.Each[Player](world) {
		transform, ok := phases.Get[phases.Transform](world, entityId)
		if !ok {
			continue
		}

		position := player.body.Position()
		transform.Translation = gm.Vec{X: position.X, Y: position.Y}
	}
}

// overlaps tests a circle against an axis aligned rectangle using their bounding boxes.
func overlaps(center gm.Vec, radius float64, rectCenter gm.Vec, rectSize gm.Vec) bool {
	circle := cp.NewBBForCircle(cp.Vector{X: center.X, Y: center.Y}, radius)
	rect := cp.NewBBForExtents(cp.Vector{X: rectCenter.X, Y: rectCenter.Y}, rectSize.X/2, rectSize.Y/2)
	return circle.Intersects(rect)
}
