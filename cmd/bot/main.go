package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/varkel/game-night-bot/internal/adapters/discord"
	"github.com/varkel/game-night-bot/internal/adapters/steam"
	"github.com/varkel/game-night-bot/internal/app/service"
	"github.com/varkel/game-night-bot/internal/infra/config"
	"github.com/varkel/game-night-bot/internal/infra/snapshot"
	"github.com/varkel/game-night-bot/internal/infra/store"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Stores (sole source of truth; snapshots are derived)
	suggestions := store.NewSuggestions()
	players := store.NewPlayers()

	// Snapshot repo: postgres when configured, json files otherwise
	var repo snapshot.Repo
	if cfg.DatabaseURL != "" {
		db, err := snapshot.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := snapshot.Migrate(db); err != nil {
			log.Fatal("migrate:", err)
		}
		log.Println("✅ DB ready and migrated")
		repo = snapshot.NewPostgresRepo(db)
	} else {
		repo = snapshot.NewFileRepo(cfg.SnapshotDir)
		log.Printf("✅ snapshots on disk at %s", cfg.SnapshotDir)
	}

	snapSvc := service.NewSnapshotService(repo, suggestions, players)
	if err := snapSvc.Load(context.Background()); err != nil {
		// Unreadable snapshots degrade to empty stores; don't abort.
		log.Printf("⚠️ snapshot load: %v (starting empty)", err)
	}

	// Steam client; a bot without the app index is useless, so this is fatal
	sc := steam.New(cfg.SteamAPIKey)
	if err := sc.FillAppIndex(context.Background()); err != nil {
		log.Fatal("steam app index:", err)
	}
	log.Println("✅ steam app index filled")

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ connected as %s (%s)", s.State.User.Username, s.State.User.ID)

	// Services
	suggestSvc := service.NewSuggestionService(sc, suggestions)
	playerSvc := service.NewPlayerService(sc, players)
	gamesSvc := service.NewGamesService(sc, players)

	// Router
	r := discordrouter.NewRouter(s, cfg.DiscordGuild, suggestSvc, playerSvc, gamesSvc, snapSvc, cfg.AdminRoleIDs)
	if err := r.Register(); err != nil {
		log.Fatalf("registering commands: %v", err)
	}
	r.Handlers()
	log.Printf("✅ commands registered (guild=%q)", cfg.DiscordGuild)

	// Wait for a signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
