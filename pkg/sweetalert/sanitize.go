package sweetalert

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

// sanitizeHTML strips unsafe markup from a dialog body before it is sent
// to the client, where it will be injected without further escaping.
func sanitizeHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(htmlBodyPolicy().Sanitize(trimmed))
}

// htmlBodyPolicy allows common formatting plus the class and style hooks
// dialog bodies typically carry.
func htmlBodyPolicy() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowElements("span", "small", "label", "button")
		htmlPolicy = policy
	})
	return htmlPolicy
}
