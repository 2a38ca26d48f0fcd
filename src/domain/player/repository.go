package player

import "github.com/sandai/players/src/domain/shared"

// Repository persists players and supports filtered, sorted searches.
type Repository interface {
	shared.SearchableRepository[*Player, shared.PlayerID]
}
