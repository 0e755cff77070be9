package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/varkel/game-night-bot/internal/domain"
)

type SuggestionService struct {
	steam       SteamAPI
	suggestions SuggestionStore
}

func NewSuggestionService(steam SteamAPI, suggestions SuggestionStore) *SuggestionService {
	return &SuggestionService{steam: steam, suggestions: suggestions}
}

// AddPlain stores a free-text suggestion.
func (s *SuggestionService) AddPlain(ctx context.Context, guild domain.GuildID, owner domain.UserID, title, genre, url string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("no title provided")
	}
	sug := domain.Suggestion{
		Kind:  domain.SuggestionPlain,
		Owner: owner,
		Title: title,
		Genre: strings.TrimSpace(genre),
		URL:   strings.TrimSpace(url),
	}
	if err := s.suggestions.Add(guild, sug); err != nil {
		return "", err
	}
	return "✅ Added suggestion: " + title, nil
}

// AddSteam resolves idOrName against the catalog, then stores a steam
// suggestion under the canonical app name.
func (s *SuggestionService) AddSteam(ctx context.Context, guild domain.GuildID, owner domain.UserID, idOrName string) (string, error) {
	app, err := s.resolveApp(ctx, idOrName)
	if err != nil {
		return "", err
	}
	sug := domain.Suggestion{
		Kind:  domain.SuggestionSteam,
		Owner: owner,
		Title: app.Name,
		AppID: app.ID,
	}
	if err := s.suggestions.Add(guild, sug); err != nil {
		return "", err
	}
	return "✅ Added suggestion: " + app.Name, nil
}

// List renders the guild's suggestion list as one codeblock message.
func (s *SuggestionService) List(ctx context.Context, guild domain.GuildID) (string, error) {
	var rows strings.Builder
	for sug := range s.suggestions.List(guild) {
		rows.WriteString(sug.Display())
		rows.WriteString("\n")
	}
	if rows.Len() == 0 {
		return "No suggestions yet. Try `/suggest`.", nil
	}
	return "Currently suggested games\n```\n" + rows.String() + "```", nil
}

// RemovePlain removes a free-text suggestion by title. Only the user who
// added it may remove it.
func (s *SuggestionService) RemovePlain(ctx context.Context, guild domain.GuildID, requester domain.UserID, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("no title provided")
	}
	removed, err := s.suggestions.Remove(guild, requester, title)
	if err != nil {
		return "", err
	}
	return "✅ Removed suggestion: " + removed.Title, nil
}

// RemoveSteam resolves idOrName to its canonical app name and removes the
// matching suggestion.
func (s *SuggestionService) RemoveSteam(ctx context.Context, guild domain.GuildID, requester domain.UserID, idOrName string) (string, error) {
	app, err := s.resolveApp(ctx, idOrName)
	if err != nil {
		return "", err
	}
	removed, err := s.suggestions.Remove(guild, requester, app.Name)
	if err != nil {
		return "", err
	}
	return "✅ Removed suggestion: " + removed.Title, nil
}

// resolveApp: numeric arg is an app id, anything else an exact app name.
func (s *SuggestionService) resolveApp(ctx context.Context, idOrName string) (domain.App, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return domain.App{}, fmt.Errorf("no id or name provided")
	}
	if id, err := strconv.ParseUint(idOrName, 10, 32); err == nil {
		app, err := s.steam.AppByID(ctx, uint32(id))
		if err != nil {
			return domain.App{}, fmt.Errorf("invalid steam id %q: %w", idOrName, err)
		}
		return app, nil
	}
	app, err := s.steam.AppByName(ctx, idOrName)
	if err != nil {
		return domain.App{}, fmt.Errorf("invalid steam name %q: %w", idOrName, err)
	}
	return app, nil
}
