package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPrompt_Preview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"short", "Hello", "Hello"},
		{"exactly 150 runes", strings.Repeat("a", 150), strings.Repeat("a", 150)},
		{"151 ascii runes", strings.Repeat("a", 151), strings.Repeat("a", 150) + "..."},
		{"150 multibyte runes", strings.Repeat("é", 150), strings.Repeat("é", 150)},
		{"151 multibyte runes", strings.Repeat("é", 151), strings.Repeat("é", 150) + "..."},
		{"emoji are cut on rune boundaries", strings.Repeat("🎵", 200), strings.Repeat("🎵", 150) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prompt{Content: tt.content}.Preview()
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestPrompt_HasPlatform(t *testing.T) {
	p := Prompt{Platforms: []Platform{PlatformChatGPT, PlatformClaude}}

	assert.True(t, p.HasPlatform(PlatformClaude))
	assert.False(t, p.HasPlatform(PlatformGemini))
	assert.False(t, p.HasPlatform("all"))
}

func TestCategoryAndPlatform(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
		assert.NotEqual(t, string(c), c.Label(), "category %s has no label", c)
	}
	for _, p := range Platforms {
		assert.True(t, p.Valid(), p)
		assert.NotEqual(t, string(p), p.Label(), "platform %s has no label", p)
	}

	_, ok := ParseCategory("cooking")
	assert.False(t, ok)
	_, ok = ParseCategory("all")
	assert.False(t, ok)
	c, ok := ParseCategory("music")
	assert.True(t, ok)
	assert.Equal(t, CategoryMusic, c)

	_, ok = ParsePlatform("Claude")
	assert.False(t, ok, "platform values are case sensitive")
	assert.Equal(t, "bard", Platform("bard").Label())
}
