package lint

import (
	"strings"
	"sync"
)

var (
	docsMu sync.RWMutex
	// docsBaseURL is empty until configured; rules then carry no doc link.
	docsBaseURL string
)

// BuildDocURL constructs a documentation URL for a rule.
// Returns an empty string when no base URL is configured.
func BuildDocURL(ruleID string) string {
	docsMu.RLock()
	defer docsMu.RUnlock()
	if docsBaseURL == "" {
		return ""
	}
	return docsBaseURL + "/" + strings.ToLower(ruleID)
}

// DocsBaseURL returns the configured documentation base URL.
func DocsBaseURL() string {
	docsMu.RLock()
	defer docsMu.RUnlock()
	return docsBaseURL
}

// SetDocsBaseURL overrides the documentation base URL.
// Useful for offline mode or custom documentation sites.
func SetDocsBaseURL(url string) {
	docsMu.Lock()
	defer docsMu.Unlock()
	docsBaseURL = strings.TrimSuffix(strings.TrimSpace(url), "/")
}

// ResetDocsBaseURL clears the documentation base URL.
func ResetDocsBaseURL() {
	SetDocsBaseURL("")
}
