package insights

import (
	"fmt"
	"os"
	"sync/atomic"
)

// KeyManager rotates over the configured Gemini API keys. Either a
// single GEMINI_API_KEY or numbered GEMINI_API_KEY_1..4 entries are
// accepted.
type KeyManager struct {
	keys    []string
	current uint32
}

// NewKeyManager collects the available API keys from the environment.
func NewKeyManager() *KeyManager {
	keys := make([]string, 0)

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		keys = append(keys, key)
	}
	for i := 1; i <= 4; i++ {
		key := os.Getenv(fmt.Sprintf("GEMINI_API_KEY_%d", i))
		if key != "" {
			keys = append(keys, key)
		}
	}

	return &KeyManager{keys: keys}
}

// HasKeys reports whether any API key is configured.
func (km *KeyManager) HasKeys() bool {
	return len(km.keys) > 0
}

// GetNextKey returns the next API key in rotation, or "" when none
// are configured.
func (km *KeyManager) GetNextKey() string {
	if len(km.keys) == 0 {
		return ""
	}
	current := atomic.AddUint32(&km.current, 1)
	return km.keys[(current-1)%uint32(len(km.keys))]
}
