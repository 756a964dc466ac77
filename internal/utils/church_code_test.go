package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChurchCode(t *testing.T) {
	code, err := GenerateChurchCode("Grace Chapel")
	require.NoError(t, err)

	parts := strings.SplitN(code, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "GRACECHAPEL", parts[0])
	assert.Len(t, parts[1], 4, "suffix should be two random bytes in hex")
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestGenerateChurchCodeTruncatesLongNames(t *testing.T) {
	code, err := GenerateChurchCode("The Redeemed Evangelical Mission International")
	require.NoError(t, err)

	slug := strings.SplitN(code, "-", 2)[0]
	assert.LessOrEqual(t, len(slug), 12)
}

func TestGenerateChurchCodeFallbackSlug(t *testing.T) {
	code, err := GenerateChurchCode("!!! ###")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "CHURCH-"))
}

func TestGenerateChurchCodeUniqueSuffix(t *testing.T) {
	a, err := GenerateChurchCode("Grace Chapel")
	require.NoError(t, err)
	b, err := GenerateChurchCode("Grace Chapel")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "same name should still produce distinct codes")
}
