package config

import "os"

// GeminiModels defines which Gemini models to use for different tasks.
type GeminiModels struct {
	// Analysis is for per-utterance understanding assessment (needs to be fast)
	Analysis string `json:"analysis"`

	// Coach is for question and hint generation (conversational quality)
	Coach string `json:"coach"`

	// Detect is for LLM-assisted answer-request refinement (cheap, optional)
	Detect string `json:"detect"`
}

// AIConfig holds all AI-related configuration.
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Analysis: getEnv("GEMINI_MODEL_ANALYSIS", "gemini-2.5-flash"),
			Coach:    getEnv("GEMINI_MODEL_COACH", "gemini-2.5-flash"),
			Detect:   getEnv("GEMINI_MODEL_DETECT", "gemini-2.0-flash"),
		},
		TimeoutMS: 10000,
	}
}

// IsEnabled returns true if the AI API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model.
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}
