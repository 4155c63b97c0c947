package wizard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxProjectNameLen bounds the project name after trimming.
const MaxProjectNameLen = 64

var (
	// fqdnPattern matches dot-separated labels: each alphanumeric with
	// interior hyphens, top label alphabetic and at least two letters.
	fqdnPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

	// localhostPattern allows localhost with an optional port.
	localhostPattern = regexp.MustCompile(`^localhost(:[0-9]{1,5})?$`)
)

// ValidateProjectName trims the raw input and returns it, or a
// rejection the prompt can show verbatim.
func ValidateProjectName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", errors.New("project name must not be empty")
	}
	if len(name) > MaxProjectNameLen {
		return "", fmt.Errorf("project name must be %d characters or fewer (got %d)", MaxProjectNameLen, len(name))
	}
	return name, nil
}

// ValidateDomain normalizes and checks an optional domain. Blank input
// is valid and clears the field. Non-blank input is lower-cased,
// stripped of a leading http:// or https:// and trailing slashes, then
// matched against the FQDN grammar or localhost with an optional port.
// Anything else is rejected; nothing is silently coerced.
func ValidateDomain(raw string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(raw))
	if domain == "" {
		return "", nil
	}
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimRight(domain, "/")
	if fqdnPattern.MatchString(domain) || localhostPattern.MatchString(domain) {
		return domain, nil
	}
	return "", fmt.Errorf("%q is not a valid domain - use something like gateway.example.com or localhost:8080, or leave blank to skip", raw)
}
