package styling

import (
	"sort"
	"strings"
	"sync"
)

// Registry collects component styles for stylesheet generation
type Registry struct {
	mu     sync.RWMutex
	styles map[string]*ComponentStyle
}

var global = &Registry{
	styles: make(map[string]*ComponentStyle),
}

// Register adds a component style to the global registry.
// Registering the same stylesheet twice is a no-op.
func Register(style *ComponentStyle) {
	if style == nil || style.CSS == "" {
		return
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	global.styles[style.Hash] = style
}

// GetAllCSS returns every registered stylesheet concatenated, in a
// stable order so builds are deterministic
func GetAllCSS() string {
	global.mu.RLock()
	defer global.mu.RUnlock()

	hashes := make([]string, 0, len(global.styles))
	for hash := range global.styles {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)

	var b strings.Builder
	for _, hash := range hashes {
		b.WriteString(global.styles[hash].CSS)
		b.WriteString("\n")
	}
	return b.String()
}

// Reset clears all registered styles (useful for testing)
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.styles = make(map[string]*ComponentStyle)
}

// StyleWithRegistry creates a ComponentStyle and registers it
func StyleWithRegistry(css string) *ComponentStyle {
	style := Style(css)
	Register(style)
	return style
}
