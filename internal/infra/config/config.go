package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // empty = register commands globally
	SteamAPIKey  string

	// Snapshot persistence: postgres when DatabaseURL is set, otherwise
	// json files under SnapshotDir.
	DatabaseURL string
	SnapshotDir string

	AdminRoleIDs []string // extra roles allowed to run /save
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("missing env %s", k)
		}
		return v
	}

	cfg := Config{
		DiscordToken: get("DISCORD_BOT_TOKEN", true),
		DiscordGuild: get("DISCORD_GUILD_ID", false),
		SteamAPIKey:  get("STEAM_API_KEY", true),
		DatabaseURL:  get("DATABASE_URL", false),
		SnapshotDir:  get("SNAPSHOT_DIR", false),
	}
	if cfg.SnapshotDir == "" {
		cfg.SnapshotDir = "./snapshots"
	}
	if raw := get("ADMIN_ROLE_IDS", false); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.AdminRoleIDs = append(cfg.AdminRoleIDs, id)
			}
		}
	}
	return cfg
}
