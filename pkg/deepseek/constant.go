package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	DefaultTimeout     = 60 * time.Second
	DefaultTemperature = 0.4

	roleSystem = "system"
	roleUser   = "user"
)
