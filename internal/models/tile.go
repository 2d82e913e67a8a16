package models

import "unicode/utf8"

type TileSize string

const (
	TileSmall  TileSize = "small"
	TileMedium TileSize = "medium"
	TileLarge  TileSize = "large"
)

// BookmarkTile is a home page tile. Spacer tiles carry an empty title and the "#" URL.
type BookmarkTile struct {
	ID    string   `json:"id" validate:"required"`
	Title string   `json:"title"`
	URL   string   `json:"url" validate:"tileurl"`
	Size  TileSize `json:"size" validate:"oneof=small medium large"`
	Color string   `json:"color" validate:"hexcolor,len=7"`
	Icon  string   `json:"icon,omitempty"`
}

type BookmarksData struct {
	Tiles []BookmarkTile `json:"tiles" validate:"dive"`
}

func (t BookmarkTile) IsSpacer() bool {
	return t.URL == "#"
}

// SafeIcon returns the icon only when it is a single emoji; anything else is dropped.
func (t BookmarkTile) SafeIcon() string {
	if IsValidEmoji(t.Icon) {
		return t.Icon
	}
	return ""
}

func IsValidEmoji(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r >= 0x1F300 && r <= 0x1F9FF:
		return true
	case r >= 0x2600 && r <= 0x26FF:
		return true
	case r >= 0x2700 && r <= 0x27BF:
		return true
	}
	return false
}

// TileView is the rendered form of a tile served to the home page.
type TileView struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Size   TileSize `json:"size"`
	Color  string   `json:"color"`
	Icon   string   `json:"icon,omitempty"`
	Spacer bool     `json:"spacer"`
}

func (t BookmarkTile) View() TileView {
	return TileView{
		ID:     t.ID,
		Title:  t.Title,
		URL:    t.URL,
		Size:   t.Size,
		Color:  t.Color,
		Icon:   t.SafeIcon(),
		Spacer: t.IsSpacer(),
	}
}
