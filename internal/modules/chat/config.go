package chat

// Config holds the chat module configuration. ChatChannelIDs lists the text
// channels the bot converses in; with none configured only the slash
// commands are active.
type Config struct {
	OpenAIKey      string   `env:"OPENAI_API_KEY,notEmpty"`
	Model          string   `env:"CHAT_MODEL" envDefault:"gpt-4"`
	ChatChannelIDs []string `env:"CHAT_CHANNEL_IDS" envSeparator:","`
}
