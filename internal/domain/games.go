package domain

import "fmt"

// App is a catalog entry from the Steam app list.
type App struct {
	ID   uint32
	Name string
}

func (a App) StoreURL() string { return StoreURL(a.ID) }

func StoreURL(appID uint32) string {
	return fmt.Sprintf("https://store.steampowered.com/app/%d/", appID)
}

// OwnedGame is one entry of a player's library, as reported by the catalog.
// Not persisted; fetched fresh per query.
type OwnedGame struct {
	AppID           uint32 `json:"appid"`
	Name            string `json:"name,omitempty"`
	PlaytimeForever int    `json:"playtime_forever"`
	PlaytimeWindows int    `json:"playtime_windows_forever"`
	PlaytimeMac     int    `json:"playtime_mac_forever"`
	PlaytimeLinux   int    `json:"playtime_linux_forever"`
}

type OwnedGames struct {
	GameCount int         `json:"game_count"`
	Games     []OwnedGame `json:"games"`
}

// Intersect keeps the games of left that also appear in right, by app id.
// Metadata (name, playtimes) comes from the left side. O(n·m) on purpose:
// libraries are small and the linear scan keeps this obvious.
func Intersect(left, right OwnedGames) OwnedGames {
	mutual := OwnedGames{}
	for _, lg := range left.Games {
		for _, rg := range right.Games {
			if rg.AppID == lg.AppID {
				mutual.Games = append(mutual.Games, lg)
				break
			}
		}
	}
	mutual.GameCount = len(mutual.Games)
	return mutual
}

// CommonGames folds Intersect across all lists, starting from the first.
// An empty input yields an empty result.
func CommonGames(lists []OwnedGames) OwnedGames {
	if len(lists) == 0 {
		return OwnedGames{}
	}
	acc := lists[0]
	for _, next := range lists[1:] {
		acc = Intersect(acc, next)
	}
	return acc
}
