package models

type Project struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1"`
	DemoURL     string   `json:"demoUrl,omitempty" validate:"omitempty,url,startswith=https://"`
	GitHubURL   string   `json:"githubUrl,omitempty" validate:"omitempty,url,startswith=https://"`
	Featured    bool     `json:"featured,omitempty"`
	Date        string   `json:"date,omitempty"`
}

type PortfolioData struct {
	Projects []Project `json:"projects" validate:"dive"`
}
