package models

import "unicode/utf8"

const previewLength = 150

type Category string

const (
	CategoryAgent     Category = "agent"
	CategoryLanguage  Category = "language"
	CategoryMusic     Category = "music"
	CategoryUtility   Category = "utility"
	CategorySystem    Category = "system"
	CategoryCharacter Category = "character"
	CategoryEducation Category = "education"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAgent,
	CategoryLanguage,
	CategoryMusic,
	CategoryUtility,
	CategorySystem,
	CategoryCharacter,
	CategoryEducation,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryAgent, CategoryLanguage, CategoryMusic, CategoryUtility,
		CategorySystem, CategoryCharacter, CategoryEducation:
		return true
	}
	return false
}

func (c Category) Label() string {
	switch c {
	case CategoryAgent:
		return "Agent"
	case CategoryLanguage:
		return "Language"
	case CategoryMusic:
		return "Music"
	case CategoryUtility:
		return "Utility"
	case CategorySystem:
		return "System"
	case CategoryCharacter:
		return "Character"
	case CategoryEducation:
		return "Education"
	}
	return string(c)
}

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

type Platform string

const (
	PlatformChatGPT Platform = "chatgpt"
	PlatformGemini  Platform = "gemini"
	PlatformClaude  Platform = "claude"
)

var Platforms = []Platform{
	PlatformChatGPT,
	PlatformGemini,
	PlatformClaude,
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformChatGPT, PlatformGemini, PlatformClaude:
		return true
	}
	return false
}

func (p Platform) Label() string {
	switch p {
	case PlatformChatGPT:
		return "ChatGPT"
	case PlatformGemini:
		return "Gemini"
	case PlatformClaude:
		return "Claude"
	}
	return string(p)
}

func ParsePlatform(s string) (Platform, bool) {
	p := Platform(s)
	return p, p.Valid()
}

// SelectAll is the facet value that disables a category or platform filter.
const SelectAll = "all"

type Prompt struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category" validate:"category"`
	Platforms   []Platform `json:"platforms" validate:"required,min=1,dive,platform"`
	Keywords    []string   `json:"keywords,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Preview returns the card preview of the prompt content.
func (p Prompt) Preview() string {
	if utf8.RuneCountInString(p.Content) <= previewLength {
		return p.Content
	}
	runes := []rune(p.Content)
	return string(runes[:previewLength]) + "..."
}

func (p Prompt) HasPlatform(platform Platform) bool {
	for _, pl := range p.Platforms {
		if pl == platform {
			return true
		}
	}
	return false
}

type PromptsData struct {
	Prompts []Prompt `json:"prompts" validate:"dive"`
}

// FilterCriteria is the search and facet state of the prompt browser.
// An empty Category or Platform, or SelectAll, matches every prompt.
type FilterCriteria struct {
	Query    string   `json:"query"`
	Category Category `json:"category"`
	Platform Platform `json:"platform"`
}

type PromptSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category"`
	Platforms   []Platform `json:"platforms"`
	Preview     string     `json:"preview"`
}

func (p Prompt) Summary() PromptSummary {
	return PromptSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Platforms:   p.Platforms,
		Preview:     p.Preview(),
	}
}

type PromptSearchResult struct {
	Prompts []PromptSummary `json:"prompts"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
}

type Bookmarklet struct {
	PromptID string `json:"prompt_id"`
	Title    string `json:"title"`
	Script   string `json:"script"`
}

type Facet struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type PromptFacets struct {
	Categories []Facet `json:"categories"`
	Platforms  []Facet `json:"platforms"`
}
