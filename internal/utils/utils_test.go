package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGetExpire(t *testing.T) {
	c := NewCache(2)

	c.Set("a", 1, time.Minute)
	require.Equal(t, 1, c.Get("a"))

	c.Set("old", 2, -time.Second)
	require.Nil(t, c.Get("old"))

	c.Delete("a")
	require.Nil(t, c.Get("a"))
}

func TestCache_EvictsLeastRecent(t *testing.T) {
	c := NewCache(2)
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Get("a")
	c.Set("c", 3, time.Minute)

	assert.Nil(t, c.Get("b"))
	assert.Equal(t, 1, c.Get("a"))
	assert.Equal(t, 3, c.Get("c"))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	require.True(t, ok)
	require.Equal(t, uint(42), id)

	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(s)
		assert.False(t, ok, s)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)
	require.True(t, CheckPasswordHash("secret123", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	out := string(RenderMarkdown("**жирный** <script>alert(1)</script>"))
	assert.Contains(t, out, "<strong>жирный</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestEnhanceHTMLContent(t *testing.T) {
	out := string(EnhanceHTMLContent(`<p><img src="/a.png"/> <a href="https://example.com">x</a> <a href="/local">y</a></p>`))
	assert.Contains(t, out, `loading="lazy"`)
	assert.Contains(t, out, `rel="nofollow noopener ugc"`)
	assert.Equal(t, 1, strings.Count(out, "nofollow"))
	assert.Empty(t, EnhanceHTMLContent(""))
}
