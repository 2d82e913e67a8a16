package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"homepage/internal/models"
)

const (
	PromptsFile   = "data/prompts.json"
	BookmarksFile = "data/bookmarks.json"
	PortfolioFile = "data/portfolio.json"
	BlogDir       = "blog"
)

// reservedPromptIDs collide with fixed routes under /api/prompts/.
var reservedPromptIDs = map[string]bool{
	"facets": true,
}

var postDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Snapshot is one fully validated load of the content root. It is never
// modified after Load returns.
type Snapshot struct {
	Prompts  []models.Prompt
	Tiles    []models.BookmarkTile
	Projects []models.Project
	Posts    []models.BlogPost
	LoadedAt time.Time
}

// Load reads and validates every content file under fsys. Any invalid entry
// fails the whole load.
func Load(fsys fs.FS) (*Snapshot, error) {
	v := newValidator()

	var prompts models.PromptsData
	if err := decodeJSON(fsys, PromptsFile, &prompts); err != nil {
		return nil, err
	}
	if err := validateData(v, PromptsFile, prompts); err != nil {
		return nil, err
	}
	if err := uniqueIDs(PromptsFile, len(prompts.Prompts), func(i int) string { return prompts.Prompts[i].ID }); err != nil {
		return nil, err
	}
	for _, p := range prompts.Prompts {
		if reservedPromptIDs[p.ID] {
			return nil, fmt.Errorf("invalid %s: prompt id %q is reserved", PromptsFile, p.ID)
		}
	}

	var bookmarks models.BookmarksData
	if err := decodeJSON(fsys, BookmarksFile, &bookmarks); err != nil {
		return nil, err
	}
	if err := validateData(v, BookmarksFile, bookmarks); err != nil {
		return nil, err
	}
	if err := uniqueIDs(BookmarksFile, len(bookmarks.Tiles), func(i int) string { return bookmarks.Tiles[i].ID }); err != nil {
		return nil, err
	}

	var portfolio models.PortfolioData
	if err := decodeJSON(fsys, PortfolioFile, &portfolio); err != nil {
		return nil, err
	}
	if err := validateData(v, PortfolioFile, portfolio); err != nil {
		return nil, err
	}
	if err := uniqueIDs(PortfolioFile, len(portfolio.Projects), func(i int) string { return portfolio.Projects[i].ID }); err != nil {
		return nil, err
	}

	posts, err := loadPosts(fsys, v)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Prompts:  prompts.Prompts,
		Tiles:    bookmarks.Tiles,
		Projects: portfolio.Projects,
		Posts:    posts,
		LoadedAt: time.Now(),
	}, nil
}

func decodeJSON(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func validateData(v *validator.Validate, name string, data any) error {
	if err := v.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid %s: %s", name, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	return nil
}

func uniqueIDs(name string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		key := id(i)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("invalid %s: duplicate id %q", name, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func loadPosts(fsys fs.FS, v *validator.Validate) ([]models.BlogPost, error) {
	var names []string
	for _, pattern := range []string{BlogDir + "/*.mdx", BlogDir + "/*.md"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", pattern, err)
		}
		names = append(names, matches...)
	}

	posts := make([]models.BlogPost, 0, len(names))
	slugs := make(map[string]string, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		post, err := ParsePost(name, data, v)
		if err != nil {
			return nil, err
		}
		if other, dup := slugs[post.Slug]; dup {
			return nil, fmt.Errorf("invalid %s: slug %q already used by %s", name, post.Slug, other)
		}
		slugs[post.Slug] = name
		posts = append(posts, post)
	}
	return posts, nil
}

// ParsePost splits a post file into YAML frontmatter and Markdown body.
// Top-level MDX import/export lines are dropped from the body.
func ParsePost(name string, data []byte, v *validator.Validate) (models.BlogPost, error) {
	if v == nil {
		v = newValidator()
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	rest, ok := bytes.CutPrefix(data, []byte("---\n"))
	if !ok {
		return models.BlogPost{}, fmt.Errorf("invalid %s: missing frontmatter", name)
	}
	header, body, ok := bytes.Cut(rest, []byte("\n---\n"))
	if !ok {
		header, ok = bytes.CutSuffix(rest, []byte("\n---"))
		if !ok {
			return models.BlogPost{}, fmt.Errorf("invalid %s: unterminated frontmatter", name)
		}
		body = nil
	}

	var fm models.PostFrontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return models.BlogPost{}, fmt.Errorf("parse %s frontmatter: %w", name, err)
	}
	if err := validateData(v, name, fm); err != nil {
		return models.BlogPost{}, err
	}
	date, err := parsePostDate(fm.Date)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	base := path.Base(name)
	return models.BlogPost{
		Slug:        strings.TrimSuffix(base, path.Ext(base)),
		Title:       fm.Title,
		Description: fm.Description,
		Author:      fm.Author,
		Date:        date,
		Body:        stripESM(string(body)),
	}, nil
}

func parsePostDate(s string) (time.Time, error) {
	for _, layout := range postDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q is not an ISO date", s)
}

func stripESM(body string) string {
	lines := strings.Split(body, "\n")
	kept := lines[:0]
	fenced := false
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			fenced = !fenced
		}
		if !fenced && (strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "export ")) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimLeft(strings.Join(kept, "\n"), "\n")
}
