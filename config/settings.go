package config

import (
	"os"
	"sync"

	"github.com/s0up4200/convai/apierr"
)

const (
	// DefaultBaseURL is the public ElevenLabs API endpoint
	DefaultBaseURL = "https://api.elevenlabs.io"

	// PropAPIKey and PropBaseURL are the recognised property names
	PropAPIKey  = "api_key"
	PropBaseURL = "base_url"

	// EnvAPIKey and EnvBaseURL are read when neither an explicit value nor a
	// configured property is present
	EnvAPIKey  = "ELEVENLABS_API_KEY"
	EnvBaseURL = "ELEVENLABS_BASE_URL"
)

// Credentials is a resolved API key and base URL. Empty fields mean unset.
type Credentials struct {
	APIKey  string
	BaseURL string
}

// Settings holds process configuration properties used to resolve
// credentials. The zero value is ready to use and safe for concurrent access.
type Settings struct {
	mu    sync.RWMutex
	props map[string]string
}

// NewSettings returns an empty holder
func NewSettings() *Settings {
	return &Settings{}
}

var (
	defaultSettings     *Settings
	defaultSettingsOnce sync.Once
)

// Default returns the process-wide holder. Clients built without explicit
// settings resolve against it.
func Default() *Settings {
	defaultSettingsOnce.Do(func() {
		defaultSettings = NewSettings()
	})
	return defaultSettings
}

// Configure replaces the stored properties with a copy of props. Earlier
// properties are discarded, not merged.
func (s *Settings) Configure(props map[string]string) {
	cp := make(map[string]string, len(props))
	for k, v := range props {
		cp[k] = v
	}

	s.mu.Lock()
	s.props = cp
	s.mu.Unlock()
}

// Reset clears all stored properties
func (s *Settings) Reset() {
	s.mu.Lock()
	s.props = nil
	s.mu.Unlock()
}

// Properties returns a copy of the stored properties
func (s *Settings) Properties() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make(map[string]string, len(s.props))
	for k, v := range s.props {
		cp[k] = v
	}
	return cp
}

// Resolve fills in the API key and base URL. Each value is taken from the
// first non-empty source: explicit, configured property, environment. The
// base URL finally falls back to DefaultBaseURL. A missing API key yields an
// authentication error.
func (s *Settings) Resolve(explicit Credentials) (Credentials, error) {
	s.mu.RLock()
	apiKey := firstNonEmpty(explicit.APIKey, s.props[PropAPIKey], os.Getenv(EnvAPIKey))
	baseURL := firstNonEmpty(explicit.BaseURL, s.props[PropBaseURL], os.Getenv(EnvBaseURL), DefaultBaseURL)
	s.mu.RUnlock()

	if apiKey == "" {
		return Credentials{}, apierr.New(apierr.KindAuthentication,
			"API key is required: pass one explicitly, configure "+PropAPIKey+" or set "+EnvAPIKey)
	}

	return Credentials{APIKey: apiKey, BaseURL: baseURL}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
