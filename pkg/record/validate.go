package record

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidMAC  = errors.New("invalid MAC address format")
	ErrInvalidVLAN = errors.New("VLAN must be a number")
)

var macPattern = regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)

// IsValidMAC reports whether s is six lowercase hex octets joined by ':'.
func IsValidMAC(s string) bool {
	return macPattern.MatchString(s)
}

// IsValidVLAN reports whether s is a non-empty run of ASCII digits.
// No range is enforced.
func IsValidVLAN(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeMAC trims and lowercases user-entered MAC text.
func NormalizeMAC(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
