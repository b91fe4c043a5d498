package types

import "errors"

// Config holds backend selection and external service parameters.
type Config struct {
	Backend      string `json:"backend" yaml:"backend"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	ChatMode     string `json:"chat_mode" yaml:"chat_mode"`
	ChatURL      string `json:"chat_url" yaml:"chat_url"`
	RecognizeURL string `json:"recognize_url" yaml:"recognize_url"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Suggestion-chat modes. Local runs the in-process engine; remote calls
// the configured chat service.
const (
	ChatModeLocal  = "local"
	ChatModeRemote = "remote"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrChatModeUnknown = errors.New("unknown chat mode")
	ErrChatURLRequired = errors.New("chat_url required for remote chat mode")
)

var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var knownChatModes = map[string]bool{
	ChatModeLocal:  true,
	ChatModeRemote: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. An empty ChatMode defaults to local.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.ChatMode != "" && !knownChatModes[c.ChatMode] {
		return ErrChatModeUnknown
	}
	if c.ChatMode == ChatModeRemote && c.ChatURL == "" {
		return ErrChatURLRequired
	}
	return nil
}
