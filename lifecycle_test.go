package phases

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanupDespawnsOnlyTagged(t *testing.T) {
	world := NewWorld()

	menuA := world.Spawn(DespawnOnExit(phaseMenu), Named("a"))
	menuB := world.Spawn(DespawnOnExit(phaseMenu), Named("b"))
	game := world.Spawn(DespawnOnExit(phaseGame))
	untagged := world.Spawn(Named("untagged"))

	type otherPhase int
	other := world.Spawn(DespawnOnExit(otherPhase(phaseMenu)))

	Cleanup(DespawnOnExit(phaseMenu))(world)

	require.False(t, world.IsAlive(menuA))
	require.False(t, world.IsAlive(menuB))

	require.True(t, world.IsAlive(game))
	require.True(t, world.IsAlive(untagged))
	require.True(t, world.IsAlive(other))
}

func TestCleanupIsIdempotent(t *testing.T) {
	world := NewWorld()

	entityId := world.Spawn(DespawnOnExit(phaseGame))

	cleanup := Cleanup(DespawnOnExit(phaseGame))
	cleanup(world)
	cleanup(world)

	require.False(t, world.IsAlive(entityId))
	require.Equal(t, 0, world.Len())

	// despawning an absent entity is fine too
	world.Despawn(entityId)
}

func TestCleanupAsExitHook(t *testing.T) {
	type overlayTag struct{}

	hooks := NewHookTable[testPhase]()
	hooks.Register(phaseMenu, StageEnter, func(world *World) {
		world.Spawn(overlayTag{})
		world.Spawn(overlayTag{})
	})

	hooks.Register(phaseMenu, StageExit, Cleanup(overlayTag{}))

	world := NewWorld()
	controller := NewController(phaseMenu, hooks)
	controller.Tick(world)
	require.Len(t, world.Tagged(overlayTag{}), 2)

	controller.Request(phaseGame)
	controller.Tick(world)
	require.Empty(t, world.Tagged(overlayTag{}))
}
