package presentation

import "github.com/bwmarrin/discordgo"

// Commands returns all slash commands for the chat module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "hype",
			Description: "Generate hype emojipasta",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "about",
					Description: "What to get hyped about",
					Required:    true,
				},
			},
		},
	}
}
