package bot

import "github.com/bwmarrin/discordgo"

// Responder provides an abstraction for responding to Discord interactions.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Respond sends a response to an interaction.
	Respond(response *discordgo.InteractionResponse) error

	// Defer acknowledges the interaction so a followup can be sent later.
	Defer() error

	// Followup sends a followup message after a deferred response.
	Followup(params *discordgo.WebhookParams) error
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends a response to the interaction via Discord API.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	return r.session.InteractionRespond(r.interaction, response)
}

// Defer acknowledges the interaction with a deferred response.
func (r *DiscordResponder) Defer() error {
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// Followup sends a followup message to the interaction.
func (r *DiscordResponder) Followup(params *discordgo.WebhookParams) error {
	_, err := r.session.FollowupMessageCreate(r.interaction, true, params)
	return err
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	LastResponse *discordgo.InteractionResponse
	LastFollowup *discordgo.WebhookParams
	Deferred     bool
	Err          error
}

// Respond records the response for testing.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.LastResponse = response
	return m.Err
}

// Defer records that the interaction was deferred.
func (m *MockResponder) Defer() error {
	m.Deferred = true
	return m.Err
}

// Followup records the followup message for testing.
func (m *MockResponder) Followup(params *discordgo.WebhookParams) error {
	m.LastFollowup = params
	return m.Err
}
