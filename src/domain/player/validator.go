package player

import (
	"sync"

	"github.com/sandai/players/src/domain/shared"
)

const MaxDisplayNameLength = 15

// Rules lists the constraints a player must satisfy. Lengths count runes.
type Rules struct {
	DisplayName string `json:"displayName" validate:"required,max=15"`
	IsActive    bool   `json:"isActive"`
}

func NewRules(p *Player) Rules {
	return Rules{DisplayName: p.displayName, IsActive: p.isActive}
}

// Validator checks a player against its Rules.
type Validator struct {
	fields *shared.StructValidator
}

var (
	structValidatorOnce sync.Once
	structValidator     *shared.StructValidator
)

// NewValidator returns a Validator. The underlying rule cache is shared.
func NewValidator() *Validator {
	structValidatorOnce.Do(func() {
		structValidator = shared.NewStructValidator()
	})
	return &Validator{fields: structValidator}
}

// Validate returns nil when the player is valid.
func (v *Validator) Validate(p *Player) shared.FieldErrors {
	return v.fields.Validate(NewRules(p))
}
