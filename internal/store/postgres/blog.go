package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codecpt/portfolio-api/internal/domain/blog"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/jackc/pgx/v5"
)

const blogCols = `id, title, slug, excerpt, content, category, published_at, featured`

func scanPost(row pgx.Row) (blog.Post, error) {
	var p blog.Post

	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Category, &p.PublishedAt, &p.Featured)

	return p, err
}

func (s *Store) GetBlogPosts(ctx context.Context) ([]blog.Post, error) {
	out := make([]blog.Post, 0)

	err := s.observe("blog.list", func() error {
		rows, err := s.pool.Query(ctx,
			`SELECT `+blogCols+` FROM blog_posts ORDER BY published_at DESC`)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			p, err := scanPost(rows)

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

func (s *Store) GetBlogPost(ctx context.Context, slug string) (blog.Post, error) {
	var p blog.Post

	err := s.observe("blog.get_by_slug", func() error {
		var err error
		p, err = scanPost(s.pool.QueryRow(ctx,
			`SELECT `+blogCols+` FROM blog_posts WHERE slug = $1`, slug))

		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.Post{}, store.ErrNotFound
		}

		return blog.Post{}, err
	}

	return p, nil
}

func (s *Store) getBlogPostByID(ctx context.Context, id int) (blog.Post, error) {
	p, err := scanPost(s.pool.QueryRow(ctx,
		`SELECT `+blogCols+` FROM blog_posts WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.Post{}, store.ErrNotFound
		}

		return blog.Post{}, err
	}

	return p, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, req blog.CreatePostRequest) (blog.Post, error) {
	var p blog.Post

	err := s.observe("blog.create", func() error {
		var err error
		p, err = scanPost(s.pool.QueryRow(ctx,
			`INSERT INTO blog_posts (title, slug, excerpt, content, category, featured)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+blogCols,
			req.Title, req.Slug, req.Excerpt, req.Content, req.Category, req.Featured))

		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return blog.Post{}, store.ErrSlugTaken
		}

		return blog.Post{}, err
	}

	return p, nil
}

// UpdateBlogPost applies only the supplied fields. The SET list is built
// positionally the same way List filters are assembled elsewhere; Postgres
// does not error on an UPDATE that matches nothing, so the missing
// RETURNING row is what signals not-found.
func (s *Store) UpdateBlogPost(ctx context.Context, id int, req blog.UpdatePostRequest) (blog.Post, error) {
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

	if req.Slug != nil {
		add("slug", *req.Slug)
	}

	if req.Excerpt != nil {
		add("excerpt", *req.Excerpt)
	}

	if req.Content != nil {
		add("content", *req.Content)
	}

	if req.Category != nil {
		add("category", *req.Category)
	}

	if req.Featured != nil {
		add("featured", *req.Featured)
	}

	if len(sets) == 0 {
		return s.getBlogPostByID(ctx, id)
	}

	query := `UPDATE blog_posts SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + blogCols

	var p blog.Post

	err := s.observe("blog.update", func() error {
		var err error
		p, err = scanPost(s.pool.QueryRow(ctx, query, args...))

		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blog.Post{}, store.ErrNotFound
		}

		if isUniqueViolation(err) {
			return blog.Post{}, store.ErrSlugTaken
		}

		return blog.Post{}, err
	}

	return p, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id int) error {
	return s.observe("blog.delete", func() error {
		_, err := s.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)

		return err
	})
}
