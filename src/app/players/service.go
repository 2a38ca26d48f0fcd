package players

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sandai/players/src/domain/player"
	"github.com/sandai/players/src/domain/shared"
	"github.com/sandai/players/src/platform/clock"
)

// Service coordinates player use cases.
type Service struct {
	Repo    player.Repository
	Logger  *zap.Logger
	Metrics *Metrics
	Clock   clock.Clock
}

// NewService creates a new player service.
func NewService(repo player.Repository, logger *zap.Logger, metrics *Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Repo:    repo,
		Logger:  logger,
		Metrics: metrics,
		Clock:   clock.New(),
	}
}

// CreatePlayerCommand contains parameters for creating a player. An empty
// DisplayName lets the entity derive one from the id; nil IsActive means active.
type CreatePlayerCommand struct {
	DisplayName string
	IsActive    *bool
}

// CreatePlayerResult contains the created player.
type CreatePlayerResult struct {
	Player *player.Player
}

// CreatePlayer validates and stores a new player.
func (s *Service) CreatePlayer(ctx context.Context, cmd CreatePlayerCommand) (CreatePlayerResult, error) {
	opts := []player.Option{player.WithCreatedAt(s.Clock.Now())}
	if cmd.DisplayName != "" {
		opts = append(opts, player.WithDisplayName(cmd.DisplayName))
	}
	if cmd.IsActive != nil {
		opts = append(opts, player.WithActive(*cmd.IsActive))
	}

	p, err := player.Create(opts...)
	if err != nil {
		s.validationFailed("create", err)
		return CreatePlayerResult{}, err
	}
	if err := s.Repo.Insert(ctx, p); err != nil {
		return CreatePlayerResult{}, err
	}

	if s.Metrics != nil {
		s.Metrics.created.Inc()
	}
	s.Logger.Info("player created",
		zap.String("player_id", p.ID().String()),
		zap.String("display_name", p.DisplayName()),
	)
	return CreatePlayerResult{Player: p}, nil
}

// GetPlayerQuery contains parameters for retrieving a player.
type GetPlayerQuery struct {
	PlayerID shared.PlayerID
}

// GetPlayer retrieves a player by ID.
func (s *Service) GetPlayer(ctx context.Context, query GetPlayerQuery) (*player.Player, error) {
	if err := query.PlayerID.Validate(); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, query.PlayerID)
}

// RenamePlayerCommand contains parameters for changing a display name.
type RenamePlayerCommand struct {
	PlayerID    shared.PlayerID
	DisplayName string
}

// RenamePlayer changes a player's display name.
func (s *Service) RenamePlayer(ctx context.Context, cmd RenamePlayerCommand) error {
	return s.mutate(ctx, cmd.PlayerID, "rename", func(p *player.Player) error {
		return p.ChangeDisplayName(cmd.DisplayName)
	})
}

// ActivatePlayer marks a player active.
func (s *Service) ActivatePlayer(ctx context.Context, id shared.PlayerID) error {
	return s.mutate(ctx, id, "activate", func(p *player.Player) error {
		p.Activate()
		return nil
	})
}

// DeactivatePlayer marks a player inactive.
func (s *Service) DeactivatePlayer(ctx context.Context, id shared.PlayerID) error {
	return s.mutate(ctx, id, "deactivate", func(p *player.Player) error {
		p.Deactivate()
		return nil
	})
}

// DeletePlayer removes a player.
func (s *Service) DeletePlayer(ctx context.Context, id shared.PlayerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("player deleted", zap.String("player_id", id.String()))
	return nil
}

// SearchPlayersQuery contains parameters for searching players.
type SearchPlayersQuery struct {
	Filter  string
	Sort    string
	SortDir string
}

// SearchPlayers filters players by display name and sorts the result.
func (s *Service) SearchPlayers(ctx context.Context, query SearchPlayersQuery) (shared.SearchResult[*player.Player], error) {
	params := shared.SearchParams{
		Filter:  query.Filter,
		Sort:    query.Sort,
		SortDir: shared.ParseSortDirection(query.SortDir),
	}
	result, err := s.Repo.Search(ctx, params)
	if err != nil {
		return shared.SearchResult[*player.Player]{}, err
	}
	if s.Metrics != nil {
		s.Metrics.searches.Inc()
	}
	s.Logger.Debug("players searched",
		zap.String("filter", params.Filter),
		zap.String("sort", params.Sort),
		zap.Int("total", result.Total),
	)
	return result, nil
}

func (s *Service) mutate(ctx context.Context, id shared.PlayerID, operation string, apply func(*player.Player) error) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := apply(p); err != nil {
		s.validationFailed(operation, err)
		return err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return err
	}
	s.Logger.Info("player updated",
		zap.String("player_id", id.String()),
		zap.String("operation", operation),
	)
	return nil
}

func (s *Service) validationFailed(operation string, err error) {
	var verr *shared.EntityValidationError
	if !errors.As(err, &verr) {
		return
	}
	if s.Metrics != nil {
		s.Metrics.validationFailures.WithLabelValues(operation).Inc()
	}
	s.Logger.Warn("player validation failed",
		zap.String("operation", operation),
		zap.Any("errors", verr.Errors),
	)
}
