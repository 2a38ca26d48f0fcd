package player

import (
	"fmt"
	"time"

	"github.com/sandai/players/src/domain/shared"
	"github.com/sandai/players/src/platform/random"
)

const (
	fakeDisplayNameLength = 10
	tooLongDisplayName    = MaxDisplayNameLength + 1
)

// PropOrFactory yields a field value for the player at the given index.
type PropOrFactory[T any] func(index int) T

// Value lifts a constant into a PropOrFactory.
func Value[T any](v T) PropOrFactory[T] {
	return func(int) T { return v }
}

// FakeBuilder produces players for tests. It never validates, so it can
// build deliberately invalid players too.
type FakeBuilder struct {
	count  int
	random random.Random

	// id and createdAt fall back to the entity defaults when nil
	id          PropOrFactory[shared.PlayerID]
	displayName PropOrFactory[string]
	isActive    PropOrFactory[bool]
	createdAt   PropOrFactory[time.Time]
}

// APlayer returns a builder for a single player.
func APlayer() *FakeBuilder {
	return newFakeBuilder(1)
}

// ThePlayers returns a builder for count players.
func ThePlayers(count int) *FakeBuilder {
	return newFakeBuilder(count)
}

func newFakeBuilder(count int) *FakeBuilder {
	b := &FakeBuilder{
		count:  max(count, 1),
		random: random.New(),
	}
	b.displayName = func(int) string {
		return b.random.String(fakeDisplayNameLength, random.Alphanumeric)
	}
	b.isActive = Value(true)
	return b
}

// WithRandom swaps the source used for generated values.
func (b *FakeBuilder) WithRandom(r random.Random) *FakeBuilder {
	b.random = r
	return b
}

func (b *FakeBuilder) WithID(id shared.PlayerID) *FakeBuilder {
	return b.WithIDFactory(Value(id))
}

func (b *FakeBuilder) WithIDFactory(f PropOrFactory[shared.PlayerID]) *FakeBuilder {
	b.id = f
	return b
}

func (b *FakeBuilder) WithDisplayName(name string) *FakeBuilder {
	return b.WithDisplayNameFactory(Value(name))
}

func (b *FakeBuilder) WithDisplayNameFactory(f PropOrFactory[string]) *FakeBuilder {
	b.displayName = f
	return b
}

// WithInvalidDisplayNameTooLong sets a display name one character over the
// limit. A random one is generated unless value is given.
func (b *FakeBuilder) WithInvalidDisplayNameTooLong(value ...string) *FakeBuilder {
	name := b.random.String(tooLongDisplayName, random.Letters)
	if len(value) > 0 {
		name = value[0]
	}
	return b.WithDisplayName(name)
}

func (b *FakeBuilder) WithInvalidDisplayNameEmpty() *FakeBuilder {
	return b.WithDisplayName("")
}

func (b *FakeBuilder) Activate() *FakeBuilder {
	b.isActive = Value(true)
	return b
}

func (b *FakeBuilder) Deactivate() *FakeBuilder {
	b.isActive = Value(false)
	return b
}

func (b *FakeBuilder) WithCreatedAt(t time.Time) *FakeBuilder {
	return b.WithCreatedAtFactory(Value(t))
}

func (b *FakeBuilder) WithCreatedAtFactory(f PropOrFactory[time.Time]) *FakeBuilder {
	b.createdAt = f
	return b
}

// Build returns the first player the builder produces.
func (b *FakeBuilder) Build() *Player {
	return b.BuildMany()[0]
}

// BuildMany returns every player, calling each factory once per index.
func (b *FakeBuilder) BuildMany() []*Player {
	players := make([]*Player, 0, b.count)
	for i := range b.count {
		opts := []Option{
			WithDisplayName(b.displayName(i)),
			WithActive(b.isActive(i)),
		}
		if b.id != nil {
			opts = append(opts, WithID(b.id(i)))
		}
		if b.createdAt != nil {
			opts = append(opts, WithCreatedAt(b.createdAt(i)))
		}
		players = append(players, New(opts...))
	}
	return players
}

// ID resolves the id factory for index 0.
func (b *FakeBuilder) ID() (shared.PlayerID, error) {
	if b.id == nil {
		return "", fmt.Errorf("property id %w", ErrNoFactory)
	}
	return b.id(0), nil
}

func (b *FakeBuilder) DisplayName() string {
	return b.displayName(0)
}

func (b *FakeBuilder) IsActive() bool {
	return b.isActive(0)
}

// CreatedAt resolves the createdAt factory for index 0.
func (b *FakeBuilder) CreatedAt() (time.Time, error) {
	if b.createdAt == nil {
		return time.Time{}, fmt.Errorf("property createdAt %w", ErrNoFactory)
	}
	return b.createdAt(0), nil
}
