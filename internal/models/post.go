package models

import "time"

// PostFrontmatter is the YAML header of a blog post file.
type PostFrontmatter struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Author      string `yaml:"author" validate:"required"`
	Date        string `yaml:"date" validate:"required"`
}

type BlogPost struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
	Body        string    `json:"-"`
}

type TOCEntry struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

type RenderedPost struct {
	BlogPost
	HTML string     `json:"html"`
	TOC  []TOCEntry `json:"toc"`
}
