package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/varkel/game-night-bot/internal/domain"
	"github.com/varkel/game-night-bot/internal/infra/store"
)

type PlayerService struct {
	steam   SteamAPI
	players PlayerStore
}

func NewPlayerService(steam SteamAPI, players PlayerStore) *PlayerService {
	return &PlayerService{steam: steam, players: players}
}

// AddSteamID stores or updates the caller's steam id. A non-numeric argument
// is treated as a vanity profile name and resolved through the catalog.
func (s *PlayerService) AddSteamID(ctx context.Context, guild domain.GuildID, owner domain.UserID, idOrVanity string) (string, error) {
	idOrVanity = strings.TrimSpace(idOrVanity)
	if idOrVanity == "" {
		return "", fmt.Errorf("no steam id or vanity name provided")
	}

	steamID, err := strconv.ParseUint(idOrVanity, 10, 64)
	if err != nil {
		steamID, err = s.steam.ResolveVanityURL(ctx, idOrVanity)
		if err != nil {
			return "", fmt.Errorf("invalid steam id or vanity name %q: %w", idOrVanity, err)
		}
	}

	switch s.players.UpsertSteamID(guild, owner, steamID) {
	case store.Unchanged:
		return "Your discord and steam users already match.", nil
	case store.Updated:
		return "✅ Updated your steam id.", nil
	default:
		return "✅ Added steam id to your user.", nil
	}
}
