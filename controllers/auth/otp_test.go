package authControllers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		assert.NotEqual(t, "000000", code)
		seen[code] = true
	}
	// 100 draws from a 900k space collapsing to a handful of values
	// would mean a broken generator.
	assert.Greater(t, len(seen), 90)
}
