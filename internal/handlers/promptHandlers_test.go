package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homepage/internal/models"
	"homepage/internal/prompts"
)

func TestSearchPrompts(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"all", "/api/prompts", []string{"quote-bot", "tutor"}},
		{"query on keyword", "/api/prompts?q=ELI5", []string{"tutor"}},
		{"category", "/api/prompts?category=character", []string{"quote-bot"}},
		{"select all", "/api/prompts?category=all&platform=all", []string{"quote-bot", "tutor"}},
		{"platform", "/api/prompts?platform=gemini", []string{"tutor"}},
		{"unknown category", "/api/prompts?category=cooking", []string{}},
		{"no match", "/api/prompts?q=zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGet(t, r, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var res models.PromptSearchResult
			decodeBody(t, rr, &res)
			ids := []string{}
			for _, p := range res.Prompts {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), res.Count)
			assert.Equal(t, 2, res.Total)
		})
	}
}

func TestSearchPrompts_EmptyListIsArray(t *testing.T) {
	rr := doGet(t, newTestRouter(t), "/api/prompts?category=cooking")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"prompts":[]`)
}

func TestGetPromptByID(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/api/prompts/tutor")
	require.Equal(t, http.StatusOK, rr.Code)
	var p models.Prompt
	decodeBody(t, rr, &p)
	assert.Equal(t, "Tutor", p.Title)

	rr = doGet(t, r, "/api/prompts/missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Prompt not found"}`, rr.Body.String())
}

func TestGetFacets(t *testing.T) {
	rr := doGet(t, newTestRouter(t), "/api/prompts/facets")
	require.Equal(t, http.StatusOK, rr.Code)

	var f models.PromptFacets
	decodeBody(t, rr, &f)
	assert.Len(t, f.Categories, 8)
	assert.Len(t, f.Platforms, 4)
}

func TestGetBookmarklet(t *testing.T) {
	r := newTestRouter(t)

	t.Run("json", func(t *testing.T) {
		rr := doGet(t, r, "/api/prompts/quote-bot/bookmarklet")
		require.Equal(t, http.StatusOK, rr.Code)

		var bm models.Bookmarklet
		decodeBody(t, rr, &bm)
		assert.Equal(t, "quote-bot", bm.PromptID)
		assert.True(t, strings.HasPrefix(bm.Script, prompts.Prelude))

		text, err := prompts.Payload(bm.Script)
		require.NoError(t, err)
		assert.Equal(t, `Say "hi" </script> & 100%`, text)
	})

	t.Run("text", func(t *testing.T) {
		rr := doGet(t, r, "/api/prompts/quote-bot/bookmarklet?format=text")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))

		script := rr.Body.String()
		assert.True(t, strings.HasPrefix(script, prompts.Prelude))
		for _, c := range []string{`"`, "<", ">", "&", "%", "`"} {
			assert.NotContains(t, script, c)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		rr := doGet(t, r, "/api/prompts/quote-bot/bookmarklet?format=xml")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown prompt", func(t *testing.T) {
		rr := doGet(t, r, "/api/prompts/missing/bookmarklet")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
