// InteractionApplicationCommand handling: parse interaction data, dispatch to
// the services, turn results into replies.
package discord

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/varkel/game-night-bot/internal/app/service"
	"github.com/varkel/game-night-bot/internal/domain"
	"github.com/varkel/game-night-bot/internal/infra/store"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			ReplyEphemeral(s, ic, "❌ Something went wrong handling that command.")
		}
	}()

	if cmd.Name == "ping" {
		SendEphemeral(s, ic, "🏓 Pong!")
		return
	}

	if ic.GuildID == "" || ic.Member == nil || ic.Member.User == nil {
		SendEphemeral(s, ic, "Cannot use this command outside a server.")
		return
	}
	guild, err := domain.ParseGuildID(ic.GuildID)
	if err != nil {
		SendEphemeral(s, ic, "⚠️ Unrecognized server id.")
		return
	}
	caller, err := domain.ParseUserID(ic.Member.User.ID)
	if err != nil {
		SendEphemeral(s, ic, "⚠️ Unrecognized user id.")
		return
	}
	log.Printf("cmd: %s by=%s guild=%s", cmd.Name, ic.Member.User.ID, ic.GuildID)

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	switch cmd.Name {

	case "suggest":
		_ = DeferEphemeral(s, ic)
		sub, _ := subcmdName(ic)
		var msg string
		var err error
		switch sub {
		case "steam":
			game, _ := optStr(ic, "game")
			msg, err = r.suggest.AddSteam(ctx, guild, caller, game)
		case "plain":
			title, _ := optStr(ic, "title")
			genre, _ := optStr(ic, "genre")
			url, _ := optStr(ic, "url")
			msg, err = r.suggest.AddPlain(ctx, guild, caller, title, genre, url)
		default:
			msg = "Try `/suggest steam` or `/suggest plain`."
		}
		if err != nil {
			msg = errText(err)
		}
		ReplyEphemeral(s, ic, msg)

	case "suggestions":
		_ = DeferPublic(s, ic)
		msg, err := r.suggest.List(ctx, guild)
		if err != nil {
			msg = errText(err)
		}
		ReplyPublic(s, ic, msg)

	case "unsuggest":
		_ = DeferEphemeral(s, ic)
		sub, _ := subcmdName(ic)
		var msg string
		var err error
		switch sub {
		case "steam":
			game, _ := optStr(ic, "game")
			msg, err = r.suggest.RemoveSteam(ctx, guild, caller, game)
		case "plain":
			title, _ := optStr(ic, "title")
			msg, err = r.suggest.RemovePlain(ctx, guild, caller, title)
		default:
			msg = "Try `/unsuggest steam` or `/unsuggest plain`."
		}
		if err != nil {
			msg = errText(err)
		}
		ReplyEphemeral(s, ic, msg)

	case "steamid":
		_ = DeferEphemeral(s, ic)
		id, _ := optStr(ic, "id")
		msg, err := r.players.AddSteamID(ctx, guild, caller, id)
		if err != nil {
			msg = errText(err)
		}
		ReplyEphemeral(s, ic, msg)

	case "commongames":
		if !r.gamesLimiter.Allow(ic.Member.User.ID) {
			SendEphemeral(s, ic, "⏳ Easy — try /commongames again in a few seconds.")
			return
		}
		_ = DeferPublic(s, ic)
		stop := step("cmd.commongames.total")
		defer stop()

		raw, _ := optStr(ic, "names")
		members, err := r.guildMembers(ic.GuildID)
		if err != nil {
			ReplyPublic(s, ic, "⚠️ Failed gathering guild users.")
			return
		}
		replies, err := r.games.FindCommonGames(ctx, guild, strings.Fields(raw), members)
		for _, msg := range replies {
			ReplyPublic(s, ic, msg)
		}
		if err != nil {
			ReplyPublic(s, ic, errText(err))
		}

	case "save":
		_ = DeferEphemeral(s, ic)
		if !r.requireAdminOrRoles(s, ic) {
			return
		}
		if err := r.snap.Save(ctx); err != nil {
			log.Printf("save snapshot: %v", err)
			ReplyEphemeral(s, ic, "⚠️ Could not save: "+err.Error())
			return
		}
		ReplyEphemeral(s, ic, "✅ Suggestions and steam links saved.")
	}
}

// guildMembers pulls the member list and converts it for the games service.
func (r *Router) guildMembers(guildID string) ([]service.Member, error) {
	ms, err := r.s.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, err
	}
	out := make([]service.Member, 0, len(ms))
	for _, m := range ms {
		if m.User == nil {
			continue
		}
		id, err := domain.ParseUserID(m.User.ID)
		if err != nil {
			continue
		}
		out = append(out, service.Member{ID: id, Username: m.User.Username, Nick: m.Nick})
	}
	return out, nil
}

// errText maps service/store errors onto the replies users see.
func errText(err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateTitle):
		return "This game has been suggested already, thanks!"
	case errors.Is(err, store.ErrNotFound):
		return "No suggestion with that title."
	case errors.Is(err, store.ErrNotOwner):
		return "Found suggestion but cannot be removed by you."
	case errors.Is(err, service.ErrInsufficientNames):
		return "Not enough discord names found to find common games."
	case errors.Is(err, service.ErrInsufficientMappings):
		return "Not enough names match discord users to find common games."
	case errors.Is(err, service.ErrNoGamesFetched):
		return "Failure processing common games."
	case errors.Is(err, service.ErrNoCommonGames):
		return "There are no shared games between requested players."
	default:
		return "⚠️ " + err.Error()
	}
}
