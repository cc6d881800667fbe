package postgres

import (
	"context"

	"github.com/codecpt/portfolio-api/internal/domain/contact"
)

func (s *Store) CreateContactMessage(ctx context.Context, req contact.CreateMessageRequest) (contact.Message, error) {
	var m contact.Message

	err := s.observe("contact.create", func() error {
		return s.pool.QueryRow(ctx,
			`INSERT INTO contact_messages (name, email, subject, message)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, name, email, subject, message, created_at, read`,
			req.Name, req.Email, req.Subject, req.Message,
		).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt, &m.Read)
	})

	if err != nil {
		return contact.Message{}, err
	}

	return m, nil
}

func (s *Store) GetContactMessages(ctx context.Context) ([]contact.Message, error) {
	out := make([]contact.Message, 0)

	err := s.observe("contact.list", func() error {
		rows, err := s.pool.Query(ctx,
			`SELECT id, name, email, subject, message, created_at, read
			 FROM contact_messages
			 ORDER BY created_at DESC`)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var m contact.Message

			err = rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt, &m.Read)

			if err != nil {
				return err
			}

			out = append(out, m)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) DeleteContactMessage(ctx context.Context, id int) error {
	// zero rows affected is fine: delete is idempotent
	return s.observe("contact.delete", func() error {
		_, err := s.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)

		return err
	})
}
