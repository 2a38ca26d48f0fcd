package player

import (
	"time"

	"github.com/sandai/players/src/domain/shared"
)

// Player is the aggregate root for a participant's public identity.
type Player struct {
	id          shared.PlayerID
	displayName string
	isActive    bool
	createdAt   time.Time
}

type props struct {
	id          shared.PlayerID
	displayName *string
	isActive    bool
	createdAt   time.Time
}

// Option overrides one of the defaults applied by New.
type Option func(*props)

// WithID sets the identity. A zero id keeps the generated one.
func WithID(id shared.PlayerID) Option {
	return func(p *props) {
		if !id.IsZero() {
			p.id = id
		}
	}
}

// WithDisplayName sets the display name, even when empty.
func WithDisplayName(name string) Option {
	return func(p *props) {
		p.displayName = &name
	}
}

func WithActive(active bool) Option {
	return func(p *props) {
		p.isActive = active
	}
}

// WithCreatedAt sets the creation time. A zero time keeps the default.
func WithCreatedAt(t time.Time) Option {
	return func(p *props) {
		if !t.IsZero() {
			p.createdAt = t
		}
	}
}

// New builds a player without validating it. Missing fields default to a
// fresh id, a display name taken from the first 8 characters of that id, an
// active flag and the current time.
func New(opts ...Option) *Player {
	p := props{
		id:        shared.NewPlayerID(),
		isActive:  true,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	name := defaultDisplayName(p.id)
	if p.displayName != nil {
		name = *p.displayName
	}
	return &Player{
		id:          p.id,
		displayName: name,
		isActive:    p.isActive,
		createdAt:   p.createdAt,
	}
}

// Create builds a player and rejects it if it breaks any rule.
func Create(opts ...Option) (*Player, error) {
	p := New(opts...)
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate runs the player rules and reports failures as an
// *shared.EntityValidationError.
func Validate(p *Player) error {
	if errs := NewValidator().Validate(p); errs != nil {
		return shared.NewEntityValidationError(errs)
	}
	return nil
}

// ChangeDisplayName renames the player. An invalid name is rejected and the
// current name is kept.
func (p *Player) ChangeDisplayName(name string) error {
	candidate := *p
	candidate.displayName = name
	if err := Validate(&candidate); err != nil {
		return err
	}
	p.displayName = name
	return nil
}

func (p *Player) Activate() {
	p.isActive = true
}

func (p *Player) Deactivate() {
	p.isActive = false
}

func (p *Player) ID() shared.PlayerID {
	return p.id
}

// EntityID satisfies shared.Entity.
func (p *Player) EntityID() shared.PlayerID {
	return p.id
}

func (p *Player) DisplayName() string {
	return p.displayName
}

func (p *Player) IsActive() bool {
	return p.isActive
}

func (p *Player) CreatedAt() time.Time {
	return p.createdAt
}

func defaultDisplayName(id shared.PlayerID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
