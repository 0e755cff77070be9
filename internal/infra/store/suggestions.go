package store

import (
	"iter"
	"sync"

	"github.com/varkel/game-night-bot/internal/domain"
)

// Suggestions holds each guild's suggestion list in memory. It is the source
// of truth; snapshots are derived from it. One RWMutex guards the whole map,
// and every check-then-mutate runs inside a single write section so two
// concurrent adds of the same title can never both pass the duplicate check.
type Suggestions struct {
	mu      sync.RWMutex
	byGuild map[domain.GuildID][]domain.Suggestion
}

func NewSuggestions() *Suggestions {
	return &Suggestions{byGuild: map[domain.GuildID][]domain.Suggestion{}}
}

// Add appends sug to the guild's list unless an existing entry has a
// case-insensitively equal (trimmed) title, in which case ErrDuplicateTitle
// is returned and nothing changes. Titles are the only dedup key: a steam and
// a plain suggestion with matching titles are duplicates of each other.
func (s *Suggestions) Add(guild domain.GuildID, sug domain.Suggestion) error {
	key := domain.NormalizeTitle(sug.Title)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byGuild[guild] {
		if domain.NormalizeTitle(existing.Title) == key {
			return ErrDuplicateTitle
		}
	}
	s.byGuild[guild] = append(s.byGuild[guild], sug)
	return nil
}

// List yields the guild's current suggestions in store order. The sequence is
// restartable; each restart re-copies under the read lock, so iteration never
// observes a half-applied mutation and never holds the lock while the caller
// runs.
func (s *Suggestions) List(guild domain.GuildID) iter.Seq[domain.Suggestion] {
	return func(yield func(domain.Suggestion) bool) {
		s.mu.RLock()
		snap := make([]domain.Suggestion, len(s.byGuild[guild]))
		copy(snap, s.byGuild[guild])
		s.mu.RUnlock()

		for _, sug := range snap {
			if !yield(sug) {
				return
			}
		}
	}
}

// Remove deletes the first suggestion whose title matches title
// (case-insensitive, trimmed) and returns it. ErrNotFound if no title
// matches; ErrNotOwner if it exists but requester did not add it. Removal is
// swap-remove: O(1), but the last element takes the removed slot, so list
// order is not stable across removals.
func (s *Suggestions) Remove(guild domain.GuildID, requester domain.UserID, title string) (domain.Suggestion, error) {
	key := domain.NormalizeTitle(title)

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.byGuild[guild]
	for i, existing := range list {
		if domain.NormalizeTitle(existing.Title) != key {
			continue
		}
		if existing.Owner != requester {
			return domain.Suggestion{}, ErrNotOwner
		}
		list[i] = list[len(list)-1]
		s.byGuild[guild] = list[:len(list)-1]
		return existing, nil
	}
	return domain.Suggestion{}, ErrNotFound
}

// Dump deep-copies the full store for snapshotting.
func (s *Suggestions) Dump() map[domain.GuildID][]domain.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.GuildID][]domain.Suggestion, len(s.byGuild))
	for g, list := range s.byGuild {
		cp := make([]domain.Suggestion, len(list))
		copy(cp, list)
		out[g] = cp
	}
	return out
}

// Restore replaces the store's contents with data. A nil map resets to empty.
func (s *Suggestions) Restore(data map[domain.GuildID][]domain.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byGuild = map[domain.GuildID][]domain.Suggestion{}
	for g, list := range data {
		cp := make([]domain.Suggestion, len(list))
		copy(cp, list)
		s.byGuild[g] = cp
	}
}
