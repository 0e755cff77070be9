package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/varkel/game-night-bot/internal/domain"
)

// maxChunk is the largest block of result lines packed into one outgoing
// message; discord caps messages at 2000 chars and the codeblock wrapper
// needs headroom.
const maxChunk = 1950

// placeholderName stands in for games whose name the catalog can't resolve.
const placeholderName = "** NNF **"

var (
	ErrInsufficientNames    = errors.New("not enough discord names matched guild members")
	ErrInsufficientMappings = errors.New("not enough matched users have a steam id stored")
	ErrNoGamesFetched       = errors.New("no game lists could be fetched")
	ErrNoCommonGames        = errors.New("no games in common")
)

type GamesService struct {
	steam   SteamAPI
	players PlayerStore
}

func NewGamesService(steam SteamAPI, players PlayerStore) *GamesService {
	return &GamesService{steam: steam, players: players}
}

// FindCommonGames computes the games every named player owns. names are
// display names matched against members (nick first, then username; no match
// drops the name). Each returned string is one outgoing message: fetch
// warnings first, then the chunked result blocks. Failure to fetch one
// player's library is reported but does not abort the rest.
func (s *GamesService) FindCommonGames(ctx context.Context, guild domain.GuildID, names []string, members []Member) ([]string, error) {
	users := resolveNames(names, members)
	if len(users) < 2 {
		return nil, ErrInsufficientNames
	}

	owners := make(map[domain.UserID]struct{}, len(users))
	for _, id := range users {
		owners[id] = struct{}{}
	}
	mapped := s.players.SteamIDsFor(guild, owners)
	if len(mapped) < 2 {
		return nil, ErrInsufficientMappings
	}

	var replies []string
	var lists []domain.OwnedGames
	for _, id := range users {
		steamID, ok := mapped[id]
		if !ok {
			continue
		}
		games, err := s.steam.GetOwnedGames(ctx, steamID)
		if err != nil {
			log.Printf("commongames: fetch steam=%d: %v", steamID, err)
			replies = append(replies, fmt.Sprintf("⚠️ Could not find games for: %d", steamID))
			continue
		}
		lists = append(lists, games)
	}
	if len(lists) == 0 {
		return replies, ErrNoGamesFetched
	}

	common := domain.CommonGames(lists)
	if len(common.Games) == 0 {
		return replies, ErrNoCommonGames
	}

	lines := make([]string, 0, len(common.Games))
	for _, g := range common.Games {
		name := g.Name
		if name == "" {
			if app, err := s.steam.AppByID(ctx, g.AppID); err == nil {
				name = app.Name
			} else {
				name = placeholderName
			}
		}
		lines = append(lines, fmt.Sprintf("%s - %s", name, domain.StoreURL(g.AppID)))
	}

	for i, chunk := range packLines(lines, maxChunk) {
		replies = append(replies, fmt.Sprintf("Common games %d\n```\n%s\n```", i, chunk))
	}
	return replies, nil
}

// resolveNames matches each requested display name against the member list,
// preferring the guild nick over the account name. Unmatched names are
// silently dropped.
func resolveNames(names []string, members []Member) []domain.UserID {
	var users []domain.UserID
	for _, name := range names {
		for _, m := range members {
			if m.Nick == name {
				users = append(users, m.ID)
				break
			}
			if m.Username == name {
				users = append(users, m.ID)
				break
			}
		}
	}
	return users
}

// packLines greedily packs lines into blocks of at most max chars, never
// splitting a line. An oversized single line gets a block of its own.
func packLines(lines []string, max int) []string {
	var chunks []string
	var cur string
	for _, line := range lines {
		switch {
		case cur == "":
			cur = line
		case len(cur)+1+len(line) <= max:
			cur += "\n" + line
		default:
			chunks = append(chunks, cur)
			cur = line
		}
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}
