package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandai/players/src/app/players"
	"github.com/sandai/players/src/domain/player"
	playerinfra "github.com/sandai/players/src/infra/player"
)

func newCreateCmd(rt *deps) *cobra.Command {
	var (
		name     string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create and validate a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := !inactive
			out, err := rt.service.CreatePlayer(cmd.Context(), players.CreatePlayerCommand{
				DisplayName: name,
				IsActive:    &active,
			})
			if err != nil {
				return err
			}
			return rt.output.Players([]*player.Player{out.Player})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the start of the id)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Create the player deactivated")

	return cmd
}

func newFakeCmd(rt *deps) *cobra.Command {
	var (
		count    int
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "fake",
		Short: "Generate fake players",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = rt.cfg.Fake.Count
			}
			if count < 1 {
				return fmt.Errorf("--count must be positive")
			}
			b := player.ThePlayers(count)
			if inactive {
				b.Deactivate()
			}
			return rt.output.Players(b.BuildMany())
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Number of players (env: PLAYERS_FAKE_COUNT)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Generate deactivated players")

	return cmd
}

func newSearchCmd(rt *deps) *cobra.Command {
	var (
		names []string
		seed  int
		query players.SearchPlayersQuery
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Seed players and search them by display name",
		Long: fmt.Sprintf(`Seeds the store with the given --name values plus --seed fake players,
then filters by a case-insensitive display name substring and sorts.

Sortable fields: %s. Without --sort the newest players come first.`,
			strings.Join(playerinfra.SortableFields(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			for _, name := range names {
				if _, err := rt.service.CreatePlayer(ctx, players.CreatePlayerCommand{DisplayName: name}); err != nil {
					return fmt.Errorf("seed %q: %w", name, err)
				}
			}
			if seed > 0 {
				if err := rt.repo.BulkInsert(ctx, player.ThePlayers(seed).BuildMany()); err != nil {
					return err
				}
			}

			result, err := rt.service.SearchPlayers(ctx, query)
			if err != nil {
				return err
			}
			return rt.output.Players(result.Items)
		},
	}

	cmd.Flags().StringSliceVar(&names, "name", nil, "Display names to seed (repeatable)")
	cmd.Flags().IntVar(&seed, "seed", 0, "Number of fake players to seed")
	cmd.Flags().StringVar(&query.Filter, "filter", "", "Display name substring")
	cmd.Flags().StringVar(&query.Sort, "sort", "", "Sort field")
	cmd.Flags().StringVar(&query.SortDir, "dir", "asc", "Sort direction: asc, desc")

	return cmd
}
