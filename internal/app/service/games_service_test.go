package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/varkel/game-night-bot/internal/domain"
	"github.com/varkel/game-night-bot/internal/infra/store"
)

const testGuild = domain.GuildID(100)

type fakeSteam struct {
	apps    map[uint32]string            // app index
	owned   map[uint64]domain.OwnedGames // steam id -> library
	failIDs map[uint64]bool              // steam ids whose fetch errors
	vanity  map[string]uint64            // vanity name -> steam id
}

var errFakeNotFound = errors.New("not found")

func (f *fakeSteam) AppByID(_ context.Context, id uint32) (domain.App, error) {
	if name, ok := f.apps[id]; ok {
		return domain.App{ID: id, Name: name}, nil
	}
	return domain.App{}, errFakeNotFound
}

func (f *fakeSteam) AppByName(_ context.Context, name string) (domain.App, error) {
	for id, n := range f.apps {
		if n == name {
			return domain.App{ID: id, Name: n}, nil
		}
	}
	return domain.App{}, errFakeNotFound
}

func (f *fakeSteam) ResolveVanityURL(_ context.Context, name string) (uint64, error) {
	if id, ok := f.vanity[name]; ok {
		return id, nil
	}
	return 0, errFakeNotFound
}

func (f *fakeSteam) GetOwnedGames(_ context.Context, steamID uint64) (domain.OwnedGames, error) {
	if f.failIDs[steamID] {
		return domain.OwnedGames{}, fmt.Errorf("steam api status 500: boom")
	}
	if g, ok := f.owned[steamID]; ok {
		return g, nil
	}
	return domain.OwnedGames{}, errFakeNotFound
}

func library(ids ...uint32) domain.OwnedGames {
	out := domain.OwnedGames{GameCount: len(ids)}
	for _, id := range ids {
		out.Games = append(out.Games, domain.OwnedGame{AppID: id, Name: fmt.Sprintf("Game %d", id)})
	}
	return out
}

func members() []Member {
	return []Member{
		{ID: 1, Username: "alice", Nick: ""},
		{ID: 2, Username: "bob", Nick: "bobby"},
		{ID: 3, Username: "carol", Nick: ""},
	}
}

// stores with alice=111, bob=222, carol=333 linked
func linkedPlayers(t *testing.T) *store.Players {
	t.Helper()
	p := store.NewPlayers()
	p.UpsertSteamID(testGuild, 1, 111)
	p.UpsertSteamID(testGuild, 2, 222)
	p.UpsertSteamID(testGuild, 3, 333)
	return p
}

func TestFindCommonGamesTwoPlayers(t *testing.T) {
	fs := &fakeSteam{owned: map[uint64]domain.OwnedGames{
		111: library(10, 20, 30),
		222: library(20, 30, 40),
	}}
	svc := NewGamesService(fs, linkedPlayers(t))

	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby"}, members())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1: %v", len(replies), replies)
	}
	for _, id := range []uint32{20, 30} {
		if !strings.Contains(replies[0], domain.StoreURL(id)) {
			t.Errorf("reply missing app %d: %q", id, replies[0])
		}
	}
	if strings.Contains(replies[0], domain.StoreURL(10)) {
		t.Errorf("reply contains non-common app 10: %q", replies[0])
	}
	if !strings.HasPrefix(replies[0], "Common games 0\n") {
		t.Errorf("reply header wrong: %q", replies[0])
	}
}

func TestFindCommonGamesThreePlayers(t *testing.T) {
	fs := &fakeSteam{owned: map[uint64]domain.OwnedGames{
		111: library(10, 20, 30),
		222: library(20, 30, 40),
		333: library(30, 50),
	}}
	svc := NewGamesService(fs, linkedPlayers(t))

	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby", "carol"}, members())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	if !strings.Contains(replies[0], domain.StoreURL(30)) {
		t.Errorf("missing app 30: %q", replies[0])
	}
	for _, id := range []uint32{10, 20, 40, 50} {
		if strings.Contains(replies[0], domain.StoreURL(id)) {
			t.Errorf("app %d should not be common: %q", id, replies[0])
		}
	}
}

func TestFindCommonGamesInsufficientNames(t *testing.T) {
	svc := NewGamesService(&fakeSteam{}, linkedPlayers(t))

	// "dave" matches nobody, so only alice resolves
	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "dave"}, members())
	if !errors.Is(err, ErrInsufficientNames) {
		t.Fatalf("err = %v, want ErrInsufficientNames", err)
	}
	if len(replies) != 0 {
		t.Errorf("expected no partial output, got %v", replies)
	}
}

func TestFindCommonGamesInsufficientMappings(t *testing.T) {
	p := store.NewPlayers()
	p.UpsertSteamID(testGuild, 1, 111) // only alice linked
	svc := NewGamesService(&fakeSteam{}, p)

	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby"}, members())
	if !errors.Is(err, ErrInsufficientMappings) {
		t.Fatalf("err = %v, want ErrInsufficientMappings", err)
	}
	if len(replies) != 0 {
		t.Errorf("expected no partial output, got %v", replies)
	}
}

func TestFindCommonGamesPartialFetchFailure(t *testing.T) {
	fs := &fakeSteam{
		owned: map[uint64]domain.OwnedGames{
			111: library(10, 20, 30),
			333: library(20, 30, 40),
		},
		failIDs: map[uint64]bool{222: true},
	}
	svc := NewGamesService(fs, linkedPlayers(t))

	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby", "carol"}, members())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want warning + result: %v", len(replies), replies)
	}
	if !strings.Contains(replies[0], "222") {
		t.Errorf("warning should name the failed steam id: %q", replies[0])
	}
	// intersection computed from the two lists that did load
	for _, id := range []uint32{20, 30} {
		if !strings.Contains(replies[1], domain.StoreURL(id)) {
			t.Errorf("result missing app %d: %q", id, replies[1])
		}
	}
}

func TestFindCommonGamesAllFetchesFail(t *testing.T) {
	fs := &fakeSteam{failIDs: map[uint64]bool{111: true, 222: true}}
	svc := NewGamesService(fs, linkedPlayers(t))

	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby"}, members())
	if !errors.Is(err, ErrNoGamesFetched) {
		t.Fatalf("err = %v, want ErrNoGamesFetched", err)
	}
	if len(replies) != 2 {
		t.Errorf("want one warning per failed fetch, got %v", replies)
	}
}

func TestFindCommonGamesEmptyIntersection(t *testing.T) {
	fs := &fakeSteam{owned: map[uint64]domain.OwnedGames{
		111: library(1, 2),
		222: library(3, 4),
	}}
	svc := NewGamesService(fs, linkedPlayers(t))

	_, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby"}, members())
	if !errors.Is(err, ErrNoCommonGames) {
		t.Fatalf("err = %v, want ErrNoCommonGames", err)
	}
}

func TestFindCommonGamesNameBackfill(t *testing.T) {
	// libraries report no names; 20 is in the app index, 30 is not
	lib := domain.OwnedGames{Games: []domain.OwnedGame{{AppID: 20}, {AppID: 30}}}
	fs := &fakeSteam{
		apps:  map[uint32]string{20: "Indexed Name"},
		owned: map[uint64]domain.OwnedGames{111: lib, 222: lib},
	}
	svc := NewGamesService(fs, linkedPlayers(t))

	replies, err := svc.FindCommonGames(context.Background(), testGuild, []string{"alice", "bobby"}, members())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(replies[0], "Indexed Name") {
		t.Errorf("missing backfilled name: %q", replies[0])
	}
	if !strings.Contains(replies[0], placeholderName) {
		t.Errorf("missing placeholder for unresolvable name: %q", replies[0])
	}
}

func TestResolveNamesPrefersNick(t *testing.T) {
	ms := []Member{
		{ID: 1, Username: "bobby", Nick: ""},
		{ID: 2, Username: "bob", Nick: "bobby"},
	}
	// member 1's username and member 2's nick both say "bobby"; member 1
	// comes first and wins, whichever field matched
	got := resolveNames([]string{"bobby"}, ms)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("resolveNames = %v, want [1]", got)
	}

	// nick wins over username within one member
	got = resolveNames([]string{"bobby"}, []Member{{ID: 5, Username: "other", Nick: "bobby"}})
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("resolveNames = %v, want [5]", got)
	}
}

func TestPackLines(t *testing.T) {
	t.Run("fits in one chunk", func(t *testing.T) {
		got := packLines([]string{"a", "b", "c"}, 100)
		if len(got) != 1 || got[0] != "a\nb\nc" {
			t.Errorf("packLines = %q", got)
		}
	})

	t.Run("splits and never breaks a line", func(t *testing.T) {
		var lines []string
		for i := 0; i < 60; i++ {
			lines = append(lines, fmt.Sprintf("Game %02d - https://store.steampowered.com/app/%d/", i, i))
		}
		chunks := packLines(lines, maxChunk)
		if len(chunks) < 2 {
			t.Fatalf("expected >=2 chunks, got %d", len(chunks))
		}
		var rejoined []string
		for _, c := range chunks {
			if len(c) > maxChunk {
				t.Errorf("chunk over limit: %d chars", len(c))
			}
			rejoined = append(rejoined, strings.Split(c, "\n")...)
		}
		if len(rejoined) != len(lines) {
			t.Fatalf("line count changed: %d != %d", len(rejoined), len(lines))
		}
		for i := range lines {
			if rejoined[i] != lines[i] {
				t.Errorf("line %d split or reordered: %q", i, rejoined[i])
			}
		}
	})

	t.Run("oversized line gets its own chunk", func(t *testing.T) {
		long := strings.Repeat("x", 50)
		got := packLines([]string{"a", long, "b"}, 10)
		if len(got) != 3 || got[1] != long {
			t.Errorf("packLines = %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := packLines(nil, 10); got != nil {
			t.Errorf("packLines(nil) = %v", got)
		}
	})
}
