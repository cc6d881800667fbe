package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codecpt/portfolio-api/internal/domain/techstack"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/jackc/pgx/v5"
)

const stackCols = `id, name, icon, progress, category, color, created_at`

func scanStack(row pgx.Row) (techstack.TechStack, error) {
	var t techstack.TechStack

	err := row.Scan(&t.ID, &t.Name, &t.Icon, &t.Progress, &t.Category, &t.Color, &t.CreatedAt)

	return t, err
}

func (s *Store) GetTechStacks(ctx context.Context) ([]techstack.TechStack, error) {
	out := make([]techstack.TechStack, 0)

	err := s.observe("techstacks.list", func() error {
		rows, err := s.pool.Query(ctx,
			`SELECT `+stackCols+` FROM tech_stacks ORDER BY category ASC, name ASC`)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			t, err := scanStack(rows)

			if err != nil {
				return err
			}

			out = append(out, t)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) GetTechStack(ctx context.Context, id int) (techstack.TechStack, error) {
	var t techstack.TechStack

	err := s.observe("techstacks.get", func() error {
		var err error
		t, err = scanStack(s.pool.QueryRow(ctx,
			`SELECT `+stackCols+` FROM tech_stacks WHERE id = $1`, id))

		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return techstack.TechStack{}, store.ErrNotFound
		}

		return techstack.TechStack{}, err
	}

	return t, nil
}

func (s *Store) CreateTechStack(ctx context.Context, req techstack.CreateTechStackRequest) (techstack.TechStack, error) {
	var t techstack.TechStack

	err := s.observe("techstacks.create", func() error {
		var err error
		t, err = scanStack(s.pool.QueryRow(ctx,
			`INSERT INTO tech_stacks (name, icon, progress, category, color)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+stackCols,
			req.Name, req.Icon, *req.Progress, req.Category, req.Color))

		return err
	})

	if err != nil {
		return techstack.TechStack{}, err
	}

	return t, nil
}

func (s *Store) UpdateTechStack(ctx context.Context, id int, req techstack.UpdateTechStackRequest) (techstack.TechStack, error) {
	var sets []string
	var args []interface{}

	args = append(args, id)
	pos := 2

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, pos))
		args = append(args, val)
		pos++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}

	if req.Icon != nil {
		add("icon", *req.Icon)
	}

	if req.Progress != nil {
		add("progress", *req.Progress)
	}

	if req.Category != nil {
		add("category", *req.Category)
	}

	if req.Color != nil {
		add("color", *req.Color)
	}

	if len(sets) == 0 {
		return s.GetTechStack(ctx, id)
	}

	query := `UPDATE tech_stacks SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + stackCols

	var t techstack.TechStack

	err := s.observe("techstacks.update", func() error {
		var err error
		t, err = scanStack(s.pool.QueryRow(ctx, query, args...))

		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return techstack.TechStack{}, store.ErrNotFound
		}

		return techstack.TechStack{}, err
	}

	return t, nil
}

func (s *Store) DeleteTechStack(ctx context.Context, id int) error {
	return s.observe("techstacks.delete", func() error {
		_, err := s.pool.Exec(ctx, `DELETE FROM tech_stacks WHERE id = $1`, id)

		return err
	})
}
