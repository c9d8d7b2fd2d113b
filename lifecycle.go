package phases

import "log/slog"

// PhaseScoped is a lifecycle tag. Entities carrying the tag are despawned by the
// Controller[P] once the phase stored in the tag is exited.
type PhaseScoped[P comparable] struct {
	Phase P
}

// DespawnOnExit creates a lifecycle tag for the given phase.
func DespawnOnExit[P comparable](phase P) PhaseScoped[P] {
	return PhaseScoped[P]{Phase: phase}
}

// Cleanup returns an action that despawns every live entity carrying the given tag.
// Entities with a different tag are not touched. Running the action when no
// tagged entity exists is a no-op.
func Cleanup(tag AnyComponent) Action {
	return func(world *World) {
		entities := world.Tagged(tag)

		for _, entityId := range entities {
			world.Despawn(entityId)
		}

		if len(entities) > 0 {
			slog.Debug("Cleanup despawned entities",
				slog.Any("tag", tag),
				slog.Int("count", len(entities)))
		}
	}
}
