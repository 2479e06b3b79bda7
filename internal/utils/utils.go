package utils

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"

	"github.com/scythe504/partydeck-backend/internal"
)

// =============================================================================
// ROOM CODES
// =============================================================================

// Room codes skip 0/O/1/I/L so they survive being read aloud.
const roomCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func GenerateRoomCode() string {
	b := make([]byte, internal.RoomCodeLength)
	for i := range b {
		b[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}

// =============================================================================
// PLAYER NAMES
// =============================================================================

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	spaceRuns   = regexp.MustCompile(`\s+`)

	badWords = []string{"admin", "mod", "system", "fuck", "shit", "bitch", "ass"}

	ErrNameLength  = errors.New("name must be 2 to 16 characters")
	ErrNameCharset = errors.New("name contains invalid characters")
	ErrNameBlocked = errors.New("name contains inappropriate words")
)

// SanitizeName trims and collapses internal whitespace.
func SanitizeName(name string) string {
	return spaceRuns.ReplaceAllString(strings.TrimSpace(name), " ")
}

func ValidateName(name string) error {
	n := strings.TrimSpace(name)
	if len(n) < 2 || len(n) > 16 {
		return ErrNameLength
	}
	if !namePattern.MatchString(n) {
		return ErrNameCharset
	}
	lower := strings.ToLower(n)
	for _, w := range badWords {
		if strings.Contains(lower, w) {
			return ErrNameBlocked
		}
	}
	return nil
}

// NameFingerprint is the ban key for a display name; bans match it even when
// the player rejoins under a fresh id.
func NameFingerprint(name string) string {
	return "name:" + strings.ToLower(strings.TrimSpace(name))
}
