package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/varkel/game-night-bot/internal/domain"
	"github.com/varkel/game-night-bot/internal/infra/snapshot"
	"github.com/varkel/game-night-bot/internal/infra/store"
)

// SnapshotService saves/loads both stores through the snapshot repo. The two
// blobs are independent: either may be absent and the other still loads.
type SnapshotService struct {
	repo        snapshot.Repo
	suggestions *store.Suggestions
	players     *store.Players
}

func NewSnapshotService(repo snapshot.Repo, suggestions *store.Suggestions, players *store.Players) *SnapshotService {
	return &SnapshotService{repo: repo, suggestions: suggestions, players: players}
}

// Save writes both stores out.
func (s *SnapshotService) Save(ctx context.Context) error {
	sugBlob, err := snapshot.Encode(s.suggestions.Dump())
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}
	plBlob, err := snapshot.Encode(s.players.Dump())
	if err != nil {
		return fmt.Errorf("encode players: %w", err)
	}
	if err := s.repo.Save(ctx, snapshot.BlobSuggestions, sugBlob); err != nil {
		return fmt.Errorf("save suggestions: %w", err)
	}
	if err := s.repo.Save(ctx, snapshot.BlobPlayers, plBlob); err != nil {
		return fmt.Errorf("save players: %w", err)
	}
	return nil
}

// Load restores both stores from the repo. An absent blob leaves its store
// empty; a corrupt blob is reported but does not block the other store from
// loading. Meant for startup.
func (s *SnapshotService) Load(ctx context.Context) error {
	blobs, err := s.repo.LoadAll(ctx, []string{snapshot.BlobSuggestions, snapshot.BlobPlayers})
	if err != nil {
		return fmt.Errorf("load snapshots: %w", err)
	}

	var errs []error
	if blob, ok := blobs[snapshot.BlobSuggestions]; ok {
		var data map[domain.GuildID][]domain.Suggestion
		if err := snapshot.Decode(blob, &data); err != nil {
			errs = append(errs, fmt.Errorf("suggestions: %w", err))
		} else {
			s.suggestions.Restore(data)
		}
	}
	if blob, ok := blobs[snapshot.BlobPlayers]; ok {
		var data map[domain.GuildID][]domain.PlayerMapping
		if err := snapshot.Decode(blob, &data); err != nil {
			errs = append(errs, fmt.Errorf("players: %w", err))
		} else {
			s.players.Restore(data)
		}
	}
	return errors.Join(errs...)
}
