package audit

import (
	"strings"

	"github.com/mssola/useragent"
)

// DescribeUserAgent reduces a raw User-Agent header to "Browser Version (OS)"
// for audit records. Bots are prefixed with "bot:".
func DescribeUserAgent(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ua := useragent.New(raw)
	name, version := ua.Browser()

	var b strings.Builder
	if ua.Bot() {
		b.WriteString("bot:")
	}
	b.WriteString(name)
	if version != "" {
		b.WriteString(" " + version)
	}
	if os := ua.OS(); os != "" {
		b.WriteString(" (" + os + ")")
	}
	if ua.Mobile() {
		b.WriteString(" mobile")
	}
	return b.String()
}
