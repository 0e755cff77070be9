package domain

import (
	"fmt"
	"strings"
)

type SuggestionKind string

const (
	SuggestionSteam SuggestionKind = "steam"
	SuggestionPlain SuggestionKind = "plain"
)

// Suggestion is one proposed game in a guild's list. Steam suggestions carry
// the catalog app id; plain ones carry free text plus optional genre/url.
type Suggestion struct {
	Kind  SuggestionKind `json:"kind"`
	Owner UserID         `json:"owner"`
	Title string         `json:"title"`
	AppID uint32         `json:"app_id,omitempty"`
	Genre string         `json:"genre,omitempty"`
	URL   string         `json:"url,omitempty"`
}

// NormalizeTitle is the single equality key for suggestions: trimmed,
// lowercased title. Two catalog games that share a display name collide under
// this key; that matches the dedup behavior users see.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Display renders the list-row form of a suggestion.
func (s Suggestion) Display() string {
	if s.Kind == SuggestionSteam {
		return fmt.Sprintf("Steam: %s - %s", s.Title, StoreURL(s.AppID))
	}
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(s.Title)
	if s.Genre != "" {
		b.WriteString(" | Genre: ")
		b.WriteString(s.Genre)
	}
	if s.URL != "" {
		b.WriteString(" | Url: ")
		b.WriteString(s.URL)
	}
	return b.String()
}
