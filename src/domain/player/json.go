package player

import (
	"encoding/json"
	"time"
)

type playerJSON struct {
	PlayerID    string    `json:"playerId"`
	DisplayName string    `json:"displayName"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(playerJSON{
		PlayerID:    p.id.String(),
		DisplayName: p.displayName,
		IsActive:    p.isActive,
		CreatedAt:   p.createdAt,
	})
}
