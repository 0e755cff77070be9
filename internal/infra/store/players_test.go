package store

import (
	"sync"
	"testing"

	"github.com/varkel/game-night-bot/internal/domain"
)

func TestPlayersUpsert(t *testing.T) {
	p := NewPlayers()

	if got := p.UpsertSteamID(guildA, alice, 111); got != Created {
		t.Errorf("first upsert = %v, want Created", got)
	}
	if got := p.UpsertSteamID(guildA, alice, 111); got != Unchanged {
		t.Errorf("same id = %v, want Unchanged", got)
	}
	if got := p.UpsertSteamID(guildA, alice, 222); got != Updated {
		t.Errorf("new id = %v, want Updated", got)
	}

	// update replaced in place, no second entry
	ids := p.SteamIDsFor(guildA, map[domain.UserID]struct{}{alice: {}})
	if len(ids) != 1 || ids[alice] != 222 {
		t.Errorf("SteamIDsFor = %v, want {alice: 222}", ids)
	}
}

func TestPlayersUpsertIdempotent(t *testing.T) {
	p := NewPlayers()
	p.UpsertSteamID(guildA, alice, 111)
	if got := p.UpsertSteamID(guildA, alice, 111); got != Unchanged {
		t.Errorf("second identical upsert = %v, want Unchanged", got)
	}
	if n := len(p.Dump()[guildA]); n != 1 {
		t.Errorf("store size = %d, want 1", n)
	}
}

func TestPlayersGuildIsolation(t *testing.T) {
	p := NewPlayers()
	p.UpsertSteamID(guildA, alice, 111)

	ids := p.SteamIDsFor(guildB, map[domain.UserID]struct{}{alice: {}})
	if len(ids) != 0 {
		t.Errorf("guildB sees guildA mappings: %v", ids)
	}
}

func TestPlayersSteamIDsForSubset(t *testing.T) {
	p := NewPlayers()
	p.UpsertSteamID(guildA, alice, 111)
	p.UpsertSteamID(guildA, bob, 222)
	p.UpsertSteamID(guildA, domain.UserID(3), 333)

	ids := p.SteamIDsFor(guildA, map[domain.UserID]struct{}{
		alice:             {},
		domain.UserID(99): {}, // unmapped, just absent from the result
	})
	if len(ids) != 1 || ids[alice] != 111 {
		t.Errorf("SteamIDsFor = %v, want {alice: 111}", ids)
	}

	// empty owner set never errors
	if ids := p.SteamIDsFor(guildA, nil); len(ids) != 0 {
		t.Errorf("nil owners = %v, want empty", ids)
	}
}

func TestPlayersConcurrentUpsertSameOwner(t *testing.T) {
	p := NewPlayers()
	const n = 32

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p.UpsertSteamID(guildA, alice, uint64(1000+i))
		}(i)
	}
	wg.Wait()

	// whatever won, there must be exactly one entry for alice
	if n := len(p.Dump()[guildA]); n != 1 {
		t.Errorf("store size = %d, want 1", n)
	}
}

func TestPlayersDumpRestoreRoundTrip(t *testing.T) {
	p := NewPlayers()
	p.UpsertSteamID(guildA, alice, 111)
	p.UpsertSteamID(guildB, bob, 222)

	fresh := NewPlayers()
	fresh.Restore(p.Dump())

	ids := fresh.SteamIDsFor(guildA, map[domain.UserID]struct{}{alice: {}})
	if ids[alice] != 111 {
		t.Errorf("guildA after restore = %v", ids)
	}
	ids = fresh.SteamIDsFor(guildB, map[domain.UserID]struct{}{bob: {}})
	if ids[bob] != 222 {
		t.Errorf("guildB after restore = %v", ids)
	}
}
