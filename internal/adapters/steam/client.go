package steam

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/varkel/game-night-bot/internal/domain"
)

// FillAppIndex downloads the full steam app list and replaces the in-memory
// index. Called once at startup; name/id lookups fail until it has run.
func (c *Client) FillAppIndex(ctx context.Context) error {
	var dto appListDTO
	if err := c.doJSON(ctx, "/ISteamApps/GetAppList/v2/", nil, &dto); err != nil {
		return fmt.Errorf("fill app index: %w", err)
	}
	byID := make(map[uint32]string, len(dto.AppList.Apps))
	for _, a := range dto.AppList.Apps {
		byID[a.AppID] = a.Name
	}
	c.mu.Lock()
	c.byID = byID
	c.mu.Unlock()
	return nil
}

// AppByID resolves an app id against the cached index.
func (c *Client) AppByID(ctx context.Context, id uint32) (domain.App, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if name, ok := c.byID[id]; ok {
		return domain.App{ID: id, Name: name}, nil
	}
	return domain.App{}, ErrNotFound
}

// AppByName resolves an exact app name against the cached index.
func (c *Client) AppByName(ctx context.Context, name string) (domain.App, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id, n := range c.byID {
		if n == name {
			return domain.App{ID: id, Name: n}, nil
		}
	}
	return domain.App{}, ErrNotFound
}

// ResolveVanityURL turns a steam vanity (profile url) name into a SteamID64.
func (c *Client) ResolveVanityURL(ctx context.Context, name string) (uint64, error) {
	q := url.Values{}
	q.Set("vanityurl", name)

	var dto vanityDTO
	if err := c.doJSON(ctx, "/ISteamUser/ResolveVanityURL/v1/", q, &dto); err != nil {
		return 0, err
	}
	if dto.Response.Success != 1 {
		return 0, ErrNotFound
	}
	return strconv.ParseUint(dto.Response.SteamID, 10, 64)
}

// GetOwnedGames fetches the library of one steam account.
func (c *Client) GetOwnedGames(ctx context.Context, steamID uint64) (domain.OwnedGames, error) {
	q := url.Values{}
	q.Set("steamid", strconv.FormatUint(steamID, 10))
	q.Set("include_appinfo", "1")
	q.Set("include_played_free_games", "1")

	var dto ownedGamesDTO
	if err := c.doJSON(ctx, "/IPlayerService/GetOwnedGames/v1/", q, &dto); err != nil {
		return domain.OwnedGames{}, err
	}
	out := domain.OwnedGames{GameCount: dto.Response.GameCount}
	for _, g := range dto.Response.Games {
		out.Games = append(out.Games, domain.OwnedGame{
			AppID:           g.AppID,
			Name:            g.Name,
			PlaytimeForever: g.PlaytimeForever,
			PlaytimeWindows: g.PlaytimeWindows,
			PlaytimeMac:     g.PlaytimeMac,
			PlaytimeLinux:   g.PlaytimeLinux,
		})
	}
	return out, nil
}
