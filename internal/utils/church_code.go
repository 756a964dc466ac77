package utils

import (
	"strings"
)

const churchCodeSlugLen = 12

// GenerateChurchCode derives a shareable join code from a church name: the
// first characters of the uppercased name with non-alphanumerics dropped,
// followed by a random hex suffix so two churches with the same name never
// collide. Example: "Grace Chapel" yields something like "GRACECHAPEL-3F0A".
func GenerateChurchCode(name string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= churchCodeSlugLen {
			break
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "CHURCH"
	}
	suffix, err := GenerateSecureRandomString(2)
	if err != nil {
		return "", err
	}
	return slug + "-" + strings.ToUpper(suffix), nil
}
