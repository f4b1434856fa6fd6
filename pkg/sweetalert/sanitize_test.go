package sweetalert

import (
	"strings"
	"testing"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n ", ""},
		{"plain formatting kept", "<b>bold</b> and <em>em</em>", "<b>bold</b> and <em>em</em>"},
		{"class kept", `<span class="text-danger">no</span>`, `<span class="text-danger">no</span>`},
		{"script stripped", `<b>hi</b><script>alert(1)</script>`, "<b>hi</b>"},
		{"event handler stripped", `<b onclick="steal()">hi</b>`, "<b>hi</b>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeHTML(tt.in); got != tt.want {
				t.Errorf("sanitizeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeHTMLIframe(t *testing.T) {
	got := sanitizeHTML(`<iframe src="https://evil.test"></iframe>trailing`)
	if strings.Contains(got, "iframe") {
		t.Errorf("iframe survived sanitization: %q", got)
	}
}
