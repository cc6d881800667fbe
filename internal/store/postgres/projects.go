package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codecpt/portfolio-api/internal/domain/project"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/jackc/pgx/v5"
)

const projectCols = `id, title, description, category, technologies, features, live_url, github_url, image_url, featured, created_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project

	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Technologies,
		&p.Features, &p.LiveURL, &p.GithubURL, &p.ImageURL, &p.Featured, &p.CreatedAt)

	return p, err
}

func (s *Store) GetProjects(ctx context.Context) ([]project.Project, error) {
	out := make([]project.Project, 0)

	err := s.observe("projects.list", func() error {
		rows, err := s.pool.Query(ctx,
			`SELECT `+projectCols+` FROM projects ORDER BY created_at DESC`)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			p, err := scanProject(rows)

			if err != nil {
				return err
			}

			out = append(out, p)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) GetProject(ctx context.Context, id int) (project.Project, error) {
	var p project.Project

	err := s.observe("projects.get", func() error {
		var err error
		p, err = scanProject(s.pool.QueryRow(ctx,
			`SELECT `+projectCols+` FROM projects WHERE id = $1`, id))

		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, store.ErrNotFound
		}

		return project.Project{}, err
	}

	return p, nil
}

func (s *Store) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	var p project.Project

	err := s.observe("projects.create", func() error {
		var err error
		p, err = scanProject(s.pool.QueryRow(ctx,
			`INSERT INTO projects (title, description, category, technologies, features, live_url, github_url, image_url, featured)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING `+projectCols,
			req.Title, req.Description, req.Category, req.Technologies, req.Features,
			req.LiveURL, req.GithubURL, req.ImageURL, req.Featured))

		return err
	})

	if err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id int, req project.UpdateProjectRequest) (project.Project, error) {
	var sets []string
	var args []interface{}

	args = append(args, id)
	pos := 2

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, pos))
		args = append(args, val)
		pos++
	}

	if req.Title != nil {
		add("title", *req.Title)
	}

	if req.Description != nil {
		add("description", *req.Description)
	}

	if req.Category != nil {
		add("category", *req.Category)
	}

	if req.Technologies != nil {
		add("technologies", *req.Technologies)
	}

	if req.Features != nil {
		add("features", *req.Features)
	}

	if req.LiveURL != nil {
		add("live_url", *req.LiveURL)
	}

	if req.GithubURL != nil {
		add("github_url", *req.GithubURL)
	}

	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}

	if req.Featured != nil {
		add("featured", *req.Featured)
	}

	if len(sets) == 0 {
		return s.GetProject(ctx, id)
	}

	query := `UPDATE projects SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + projectCols

	var p project.Project

	err := s.observe("projects.update", func() error {
		var err error
		p, err = scanProject(s.pool.QueryRow(ctx, query, args...))

		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, store.ErrNotFound
		}

		return project.Project{}, err
	}

	return p, nil
}

func (s *Store) DeleteProject(ctx context.Context, id int) error {
	return s.observe("projects.delete", func() error {
		_, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)

		return err
	})
}
