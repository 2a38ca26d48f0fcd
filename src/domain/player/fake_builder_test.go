package player_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandai/players/src/domain/player"
	"github.com/sandai/players/src/domain/shared"
	"github.com/sandai/players/src/platform/random"
)

// countingRandom records String calls and returns a fixed value.
type countingRandom struct {
	calls  int
	lenArg []int
	value  string
}

var _ random.Random = (*countingRandom)(nil)

func (r *countingRandom) Intn(int) int { return 0 }

func (r *countingRandom) String(length int, _ string) string {
	r.calls++
	r.lenArg = append(r.lenArg, length)
	return r.value
}

func TestFakeBuilder_ID(t *testing.T) {
	t.Run("unset id has no factory", func(t *testing.T) {
		_, err := player.APlayer().ID()
		require.ErrorIs(t, err, player.ErrNoFactory)
		assert.EqualError(t, err, "property id has no factory, use With methods")
	})

	t.Run("with value", func(t *testing.T) {
		id := shared.NewPlayerID()
		b := player.APlayer()
		assert.Same(t, b, b.WithID(id))

		got, err := b.ID()
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, id, b.Build().ID())
	})

	t.Run("factory is called once per player", func(t *testing.T) {
		id := shared.NewPlayerID()
		calls := 0
		factory := func(int) shared.PlayerID {
			calls++
			return id
		}

		player.APlayer().WithIDFactory(factory).Build()
		assert.Equal(t, 1, calls)

		calls = 0
		players := player.ThePlayers(2).WithIDFactory(factory).BuildMany()
		assert.Equal(t, 2, calls)
		assert.Equal(t, id, players[0].ID())
		assert.Equal(t, id, players[1].ID())
	})

	t.Run("default comes from the entity", func(t *testing.T) {
		p := player.APlayer().Build()
		assert.NoError(t, p.ID().Validate())
	})
}

func TestFakeBuilder_DisplayName(t *testing.T) {
	t.Run("default uses the random source", func(t *testing.T) {
		r := &countingRandom{value: "abcdefghij"}
		p := player.APlayer().WithRandom(r).Build()

		assert.Equal(t, 1, r.calls)
		assert.Equal(t, []int{10}, r.lenArg)
		assert.Equal(t, "abcdefghij", p.DisplayName())
	})

	t.Run("default is valid", func(t *testing.T) {
		for _, p := range player.ThePlayers(5).BuildMany() {
			assert.NoError(t, player.Validate(p))
		}
	})

	t.Run("with value", func(t *testing.T) {
		b := player.APlayer()
		assert.Same(t, b, b.WithDisplayName("test name"))
		assert.Equal(t, "test name", b.DisplayName())
		assert.Equal(t, "test name", b.Build().DisplayName())
	})

	t.Run("factory receives the index", func(t *testing.T) {
		indexed := func(i int) string { return "name " + string(rune('0'+i)) }

		p := player.APlayer().WithDisplayNameFactory(indexed).Build()
		assert.Equal(t, "name 0", p.DisplayName())

		players := player.ThePlayers(2).WithDisplayNameFactory(indexed).BuildMany()
		assert.Equal(t, "name 0", players[0].DisplayName())
		assert.Equal(t, "name 1", players[1].DisplayName())
	})

	t.Run("invalid too long", func(t *testing.T) {
		b := player.APlayer()
		assert.Same(t, b, b.WithInvalidDisplayNameTooLong())
		assert.Len(t, b.DisplayName(), 16)
		assert.Error(t, player.Validate(b.Build()))

		tooLong := "aaaaaaaaaaaaaaaa"
		b.WithInvalidDisplayNameTooLong(tooLong)
		assert.Equal(t, tooLong, b.DisplayName())
	})

	t.Run("invalid empty", func(t *testing.T) {
		p := player.APlayer().WithInvalidDisplayNameEmpty().Build()
		assert.Empty(t, p.DisplayName())
		assert.ErrorIs(t, player.Validate(p), shared.ErrEntityValidation)
	})
}

func TestFakeBuilder_IsActive(t *testing.T) {
	b := player.APlayer()
	assert.True(t, b.IsActive())

	assert.Same(t, b, b.Deactivate())
	assert.False(t, b.IsActive())
	assert.False(t, b.Build().IsActive())

	assert.Same(t, b, b.Activate())
	assert.True(t, b.IsActive())
	assert.True(t, b.Build().IsActive())
}

func TestFakeBuilder_CreatedAt(t *testing.T) {
	t.Run("unset createdAt has no factory", func(t *testing.T) {
		_, err := player.APlayer().CreatedAt()
		assert.ErrorIs(t, err, player.ErrNoFactory)
	})

	t.Run("with value", func(t *testing.T) {
		date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		b := player.APlayer()
		assert.Same(t, b, b.WithCreatedAt(date))

		got, err := b.CreatedAt()
		require.NoError(t, err)
		assert.Equal(t, date, got)
		assert.Equal(t, date, b.Build().CreatedAt())
	})

	t.Run("factory receives the index", func(t *testing.T) {
		date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		factory := func(i int) time.Time { return date.Add(time.Duration(i+2) * time.Millisecond) }

		p := player.APlayer().WithCreatedAtFactory(factory).Build()
		assert.Equal(t, date.Add(2*time.Millisecond), p.CreatedAt())

		players := player.ThePlayers(2).WithCreatedAtFactory(factory).BuildMany()
		assert.Equal(t, date.Add(2*time.Millisecond), players[0].CreatedAt())
		assert.Equal(t, date.Add(3*time.Millisecond), players[1].CreatedAt())
	})
}

func TestFakeBuilder_BuildPlayer(t *testing.T) {
	p := player.APlayer().Build()
	assert.NoError(t, p.ID().Validate())
	assert.NotEmpty(t, p.DisplayName())
	assert.True(t, p.IsActive())
	assert.False(t, p.CreatedAt().IsZero())

	id := shared.NewPlayerID()
	createdAt := time.Now()
	p = player.APlayer().
		WithID(id).
		WithDisplayName("name test").
		Deactivate().
		WithCreatedAt(createdAt).
		Build()

	assert.Equal(t, id, p.ID())
	assert.Equal(t, "name test", p.DisplayName())
	assert.False(t, p.IsActive())
	assert.Equal(t, createdAt, p.CreatedAt())
}

func TestFakeBuilder_BuildMany(t *testing.T) {
	players := player.ThePlayers(3).BuildMany()
	require.Len(t, players, 3)

	seen := map[shared.PlayerID]bool{}
	for _, p := range players {
		assert.NoError(t, p.ID().Validate())
		assert.True(t, p.IsActive())
		assert.False(t, seen[p.ID()], "duplicate id %s", p.ID())
		seen[p.ID()] = true
	}
}
