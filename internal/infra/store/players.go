package store

import (
	"sync"

	"github.com/varkel/game-night-bot/internal/domain"
)

// UpsertResult says what UpsertSteamID did with the mapping.
type UpsertResult int

const (
	Created UpsertResult = iota
	Updated
	Unchanged
)

// Players maps discord users to their steam ids, per guild. Mappings are
// update-only: there is deliberately no remove operation.
type Players struct {
	mu      sync.RWMutex
	byGuild map[domain.GuildID][]domain.PlayerMapping
}

func NewPlayers() *Players {
	return &Players{byGuild: map[domain.GuildID][]domain.PlayerMapping{}}
}

// UpsertSteamID inserts or replaces the owner's mapping in one write section,
// so concurrent calls for the same (guild, owner) can't produce two entries
// or a lost update. Returns Unchanged when the stored id already matches.
func (p *Players) UpsertSteamID(guild domain.GuildID, owner domain.UserID, steamID uint64) UpsertResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	list := p.byGuild[guild]
	for i, pm := range list {
		if pm.Owner != owner {
			continue
		}
		if pm.SteamID == steamID {
			return Unchanged
		}
		list[i] = domain.PlayerMapping{Kind: domain.PlayerSteam, Owner: owner, SteamID: steamID}
		return Updated
	}
	p.byGuild[guild] = append(list, domain.PlayerMapping{Kind: domain.PlayerSteam, Owner: owner, SteamID: steamID})
	return Created
}

// SteamIDsFor returns owner→steam id for every stored mapping whose owner is
// in owners. Missing owners are simply absent from the result.
func (p *Players) SteamIDsFor(guild domain.GuildID, owners map[domain.UserID]struct{}) map[domain.UserID]uint64 {
	out := map[domain.UserID]uint64{}

	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, pm := range p.byGuild[guild] {
		if _, ok := owners[pm.Owner]; ok {
			out[pm.Owner] = pm.SteamID
		}
	}
	return out
}

// Dump deep-copies the full store for snapshotting.
func (p *Players) Dump() map[domain.GuildID][]domain.PlayerMapping {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[domain.GuildID][]domain.PlayerMapping, len(p.byGuild))
	for g, list := range p.byGuild {
		cp := make([]domain.PlayerMapping, len(list))
		copy(cp, list)
		out[g] = cp
	}
	return out
}

// Restore replaces the store's contents with data. A nil map resets to empty.
func (p *Players) Restore(data map[domain.GuildID][]domain.PlayerMapping) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byGuild = map[domain.GuildID][]domain.PlayerMapping{}
	for g, list := range data {
		cp := make([]domain.PlayerMapping, len(list))
		copy(cp, list)
		p.byGuild[g] = cp
	}
}
