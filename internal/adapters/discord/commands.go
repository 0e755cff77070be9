package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "Check that the bot is alive",
	},
	{
		Name:        "suggest",
		Description: "Suggest a game for game night",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "steam",
				Description: "Suggest a steam game by app id or exact name",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game",
					Description: "Steam app id or exact store name",
					Required:    true,
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "plain",
				Description: "Suggest any game by title",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "Game title", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "genre", Description: "Genre (optional)"},
					{Type: discordgo.ApplicationCommandOptionString, Name: "url", Description: "Link (optional)"},
				},
			},
		},
	},
	{
		Name:        "suggestions",
		Description: "List this server's suggested games",
	},
	{
		Name:        "unsuggest",
		Description: "Remove one of your suggestions",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "steam",
				Description: "Remove a steam suggestion by app id or exact name",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game",
					Description: "Steam app id or exact store name",
					Required:    true,
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "plain",
				Description: "Remove a plain suggestion by title",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Game title",
					Required:    true,
				}},
			},
		},
	},
	{
		Name:        "steamid",
		Description: "Link your steam account (SteamID64 or vanity name)",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Your SteamID64 or vanity profile name",
			Required:    true,
		}},
	},
	{
		Name:        "commongames",
		Description: "Find games the named players all own",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "names",
			Description: "Display names, separated by spaces",
			Required:    true,
		}},
	},
	{
		Name:        "save",
		Description: "Persist suggestions and steam links (admins)",
	},
}
