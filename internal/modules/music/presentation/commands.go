package presentation

import "github.com/bwmarrin/discordgo"

// Commands returns all slash commands for the music module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "play",
			Description: "Play a song from URL or search",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "URL or search term",
					Required:    true,
				},
			},
		},
		{
			Name:        "pause",
			Description: "Pause the current song",
		},
		{
			Name:        "resume",
			Description: "Resume the paused song",
		},
		{
			Name:        "skip",
			Description: "Skip the current song",
		},
		{
			Name:        "queue",
			Description: "Show the upcoming songs",
		},
		{
			Name:        "clear",
			Description: "Clear the song queue",
		},
		{
			Name:        "leave",
			Description: "Leave the voice channel",
		},
	}
}
