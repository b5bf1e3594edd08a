// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AIConfig holds settings for the text-completion API.
type AIConfig struct {
	// Model is the completion model identifier (e.g. "gpt-3.5-turbo-instruct").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// BaseURL overrides the API endpoint for OpenAI-compatible gateways.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Temperature is the sampling temperature (default 0.5).
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// TopP is the nucleus sampling mass (default 1).
	TopP float64 `json:"top_p" yaml:"top_p" mapstructure:"top_p"`

	FrequencyPenalty float64 `json:"frequency_penalty" yaml:"frequency_penalty" mapstructure:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty" yaml:"presence_penalty" mapstructure:"presence_penalty"`
}

// CredentialConfig locates the API secret.
type CredentialConfig struct {
	// EnvFile is the dotenv file the secret is persisted to (default ".env").
	EnvFile string `json:"env_file" yaml:"env_file" mapstructure:"env_file"`

	// Key is both the dotenv key and the environment variable name (default "API_SECRET").
	Key string `json:"key" yaml:"key" mapstructure:"key"`
}

// OutputConfig holds settings for generated files.
type OutputConfig struct {
	// Dir is the directory generated posts are written to (default "generated").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// PromptConfig controls how the prompt is assembled.
type PromptConfig struct {
	// Questions lists question kinds in the order they are asked.
	Questions []string `json:"questions" yaml:"questions" mapstructure:"questions"`

	// StyleSuffix is appended to every assembled prompt.
	StyleSuffix string `json:"style_suffix" yaml:"style_suffix" mapstructure:"style_suffix"`
}

// InputConfig controls interactive input.
type InputConfig struct {
	// MaxAttempts bounds re-prompts for numeric answers. Zero means unbounded.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	// Mode is "development" or "production".
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`
}

// Config groups every setting of a generation run.
type Config struct {
	AI          AIConfig         `json:"ai" yaml:"ai" mapstructure:"ai"`
	Credentials CredentialConfig `json:"credentials" yaml:"credentials" mapstructure:"credentials"`
	Output      OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
	Prompt      PromptConfig     `json:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Input       InputConfig      `json:"input" yaml:"input" mapstructure:"input"`
	Log         LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultStyleSuffix asks for structured, SEO-friendly HTML.
const DefaultStyleSuffix = "It should support html and don't forget to use necessary html tags. " +
	"Use line break when necessary. Each paragraph should be 200 approx. " +
	"Always follow seo rules while writing content. " +
	"Always use <p> tag for paragraph. It should be a structured content. " +
	"Tell like you are confident experienced person. Try to use more active voice. " +
	"Try to include word 'you' in the sentence like this article is saying to the reader. " +
	"Article should be high quality and plagiarism free. " +
	"Use a tone with a shorter sentence that high school kid can understand."

// DefaultConfig returns the settings used when no config file or environment
// override is present.
func DefaultConfig() Config {
	return Config{
		AI: AIConfig{
			Model:       "gpt-3.5-turbo-instruct",
			Temperature: 0.5,
			TopP:        1,
		},
		Credentials: CredentialConfig{
			EnvFile: ".env",
			Key:     "API_SECRET",
		},
		Output: OutputConfig{
			Dir: "generated",
		},
		Prompt: PromptConfig{
			Questions:   []string{"title", "keywords", "word_count", "extra_note"},
			StyleSuffix: DefaultStyleSuffix,
		},
		Log: LogConfig{
			Mode: "development",
		},
	}
}
