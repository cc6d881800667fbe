package project

import "time"

type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	Features     []string  `json:"features"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	ImageURL     *string   `json:"imageUrl"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=200"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required,max=80"`
	Technologies []string `json:"technologies" binding:"required"`
	Features     []string `json:"features" binding:"required"`
	LiveURL      *string  `json:"liveUrl" binding:"omitempty,url"`
	GithubURL    *string  `json:"githubUrl" binding:"omitempty,url"`
	ImageURL     *string  `json:"imageUrl" binding:"omitempty,url"`
	Featured     bool     `json:"featured"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category" binding:"omitempty,max=80"`
	Technologies *[]string `json:"technologies"`
	Features     *[]string `json:"features"`
	LiveURL      *string   `json:"liveUrl" binding:"omitempty,url"`
	GithubURL    *string   `json:"githubUrl" binding:"omitempty,url"`
	ImageURL     *string   `json:"imageUrl" binding:"omitempty,url"`
	Featured     *bool     `json:"featured"`
}
