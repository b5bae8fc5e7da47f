package config

const (
	AppName    = "FlashcardKeep"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultCardCount   = 12
	DefaultMaxTokens   = 2048
	DefaultTemperature = 0.3
)
