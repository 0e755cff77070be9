package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/varkel/game-night-bot/internal/app/service"
)

type Router struct {
	s       *discordgo.Session
	guildID string // registration scope; empty = global

	suggest *service.SuggestionService
	players *service.PlayerService
	games   *service.GamesService
	snap    *service.SnapshotService

	adminRoleIDs []string
	gamesLimiter *userLimiter // /commongames fans out catalog calls
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	suggest *service.SuggestionService,
	players *service.PlayerService,
	games *service.GamesService,
	snap *service.SnapshotService,
	adminRoleIDs []string,
) *Router {
	return &Router{
		s:            s,
		guildID:      guildID,
		suggest:      suggest,
		players:      players,
		games:        games,
		snap:         snap,
		adminRoleIDs: adminRoleIDs,
		gamesLimiter: newUserLimiter(10 * time.Second),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		r.handleSlashCommand(s, ic)
	})
}
