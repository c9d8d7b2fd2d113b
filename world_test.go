package phases

import (
	"errors"
	"math"
	"testing"

	"github.com/oliverbestmann/phases/gm"
	"github.com/stretchr/testify/require"
)

type velocity struct {
	X, Y float64
}

func TestWorldSpawnAndGet(t *testing.T) {
	world := NewWorld()

	entityId := world.Spawn(
		Named("player"),
		TransformFromXY(1, 2),
		velocity{X: 3},
	)

	require.NotEqual(t, NoEntityId, entityId)
	require.True(t, world.IsAlive(entityId))

	transform, ok := Get[Transform](world, entityId)
	require.True(t, ok)
	require.Equal(t, gm.Vec{X: 1, Y: 2}, transform.Translation)

	// modifications through the pointer are persistent
	transform.Translation.X = 10

	transform, _ = Get[Transform](world, entityId)
	require.Equal(t, 10.0, transform.Translation.X)

	require.True(t, Has[velocity](world, entityId))
	require.False(t, Has[Camera](world, entityId))
}

func TestWorldInsertReplaces(t *testing.T) {
	world := NewWorld()

	entityId := world.Spawn(velocity{X: 1})
	world.Insert(entityId, velocity{X: 2}, Named("fast"))

	value, _ := Get[velocity](world, entityId)
	require.Equal(t, 2.0, value.X)

	Remove[velocity](world, entityId)
	require.False(t, Has[velocity](world, entityId))
	require.True(t, Has[Name](world, entityId))
}

func TestWorldBundle(t *testing.T) {
	world := NewWorld()

	entityId := world.Spawn(Bundle(Named("a"), Bundle(velocity{}, Camera{})))

	require.True(t, Has[Name](world, entityId))
	require.True(t, Has[velocity](world, entityId))
	require.True(t, Has[Camera](world, entityId))
}

func TestWorldRejectsPointers(t *testing.T) {
	world := NewWorld()
	require.Panics(t, func() { world.Spawn(&velocity{}) })
	require.Panics(t, func() { world.InsertResource(&velocity{}) })
}

func TestWorldEach(t *testing.T) {
	world := NewWorld()

	a := world.Spawn(velocity{X: 1})
	world.Spawn(Named("no velocity"))
	c := world.Spawn(velocity{X: 3})

	var ids []EntityId
	for entityId, value := range Each[velocity](world) {
		ids = append(ids, entityId)

		// despawning while iterating is allowed
		world.Despawn(c)
		value.X += 1
	}

	require.Equal(t, []EntityId{a}, ids)

	value, _ := Get[velocity](world, a)
	require.Equal(t, 2.0, value.X)
}

func TestWorldSingle(t *testing.T) {
	world := NewWorld()

	_, _, ok := Single[Camera](world)
	require.False(t, ok)

	cameraId := world.Spawn(Camera{Order: 1})

	entityId, camera, ok := Single[Camera](world)
	require.True(t, ok)
	require.Equal(t, cameraId, entityId)
	require.Equal(t, 1, camera.Order)

	world.Spawn(Camera{})
	_, _, ok = Single[Camera](world)
	require.False(t, ok)
}

func TestWorldTagged(t *testing.T) {
	world := NewWorld()

	a := world.Spawn(DespawnOnExit(phaseMenu))
	world.Spawn(DespawnOnExit(phaseGame))
	c := world.Spawn(DespawnOnExit(phaseMenu))

	require.Equal(t, []EntityId{a, c}, world.Tagged(DespawnOnExit(phaseMenu)))
	require.Empty(t, world.Tagged(DespawnOnExit(phaseOver)))

	require.Panics(t, func() { world.Tagged([]int{1}) })
}

func TestWorldResources(t *testing.T) {
	type score struct{ Value int }

	world := NewWorld()

	_, ok := ResourceOf[score](world)
	require.False(t, ok)
	require.False(t, ResourceExists[score](world))

	world.InsertResource(score{Value: 1})
	MustResourceOf[score](world).Value += 1

	res, ok := ResourceOf[score](world)
	require.True(t, ok)
	require.Equal(t, 2, res.Value)

	RemoveResource[score](world)
	require.Panics(t, func() { MustResourceOf[score](world) })
}

func TestWorldExit(t *testing.T) {
	world := NewWorld()

	_, ok := world.ExitRequested()
	require.False(t, ok)

	errFirst := errors.New("first")
	world.Exit(errFirst)
	world.Exit(errors.New("second"))

	err, ok := world.ExitRequested()
	require.True(t, ok)
	require.ErrorIs(t, err, errFirst)
}

func TestEntityIdString(t *testing.T) {
	require.Equal(t, "Entity(12)", EntityId(12).String())
}

func TestWorldSpawnPanicsWhenIdsAreExhausted(t *testing.T) {
	world := NewWorld()
	world.entityIdSeq = math.MaxUint64 - 1

	last := world.Spawn(Named("last"))
	require.Equal(t, EntityId(math.MaxUint64), last)

	require.Panics(t, func() { world.Spawn(Named("one too many")) })

	// the live entity was not overwritten
	name, ok := Get[Name](world, last)
	require.True(t, ok)
	require.Equal(t, "last", name.Name)
}
