package service

import (
	"context"
	"iter"

	"github.com/varkel/game-night-bot/internal/domain"
	"github.com/varkel/game-night-bot/internal/infra/store"
)

// Implemented by internal/adapters/steam.Client
type SteamAPI interface {
	AppByID(ctx context.Context, id uint32) (domain.App, error)
	AppByName(ctx context.Context, name string) (domain.App, error)
	ResolveVanityURL(ctx context.Context, name string) (uint64, error)
	GetOwnedGames(ctx context.Context, steamID uint64) (domain.OwnedGames, error)
}

// Implemented by internal/infra/store.Suggestions
type SuggestionStore interface {
	Add(guild domain.GuildID, sug domain.Suggestion) error
	List(guild domain.GuildID) iter.Seq[domain.Suggestion]
	Remove(guild domain.GuildID, requester domain.UserID, title string) (domain.Suggestion, error)
}

// Implemented by internal/infra/store.Players
type PlayerStore interface {
	UpsertSteamID(guild domain.GuildID, owner domain.UserID, steamID uint64) store.UpsertResult
	SteamIDsFor(guild domain.GuildID, owners map[domain.UserID]struct{}) map[domain.UserID]uint64
}

// Member is one guild member as reported by the chat transport, used to
// resolve display names in /commongames.
type Member struct {
	ID       domain.UserID
	Username string
	Nick     string
}
