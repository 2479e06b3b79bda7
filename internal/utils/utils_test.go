package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scythe504/partydeck-backend/internal"
)

func TestGenerateRoomCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateRoomCode()
		assert.Len(t, code, internal.RoomCodeLength)
		for _, c := range code {
			assert.NotContains(t, "0O1IL", string(c))
		}
		seen[code] = true
	}
	// Not a uniqueness guarantee, but 100 draws from 32^4 should not all
	// collide.
	assert.Greater(t, len(seen), 1)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Bobby Tables", SanitizeName("  Bobby   Tables  "))
	assert.Equal(t, "", SanitizeName("   "))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Alice"))
	assert.NoError(t, ValidateName("player_2"))
	assert.ErrorIs(t, ValidateName("x"), ErrNameLength)
	assert.ErrorIs(t, ValidateName("a-very-long-name-over-limit"), ErrNameLength)
	assert.ErrorIs(t, ValidateName("bad!name"), ErrNameCharset)
	assert.ErrorIs(t, ValidateName("AdMiN99"), ErrNameBlocked)
}

func TestNameFingerprint(t *testing.T) {
	assert.Equal(t, "name:bobby tables", NameFingerprint(" Bobby Tables "))
}
