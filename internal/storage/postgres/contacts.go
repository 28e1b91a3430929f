package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/storage"
)

// CreateContact inserts a contact owned by contact.UserID.
func (s *Store) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	const query = `
	INSERT INTO contacts (user_id, name, email, phone, description)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, user_id, name, email, phone, description, created_at;
	`
	row := s.pool.QueryRow(ctx, query, contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Description)
	return scanContact(row)
}

// UpdateContact rewrites the mutable fields of an existing contact.
func (s *Store) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	const query = `
	UPDATE contacts SET name = $2, email = $3, phone = $4, description = $5
	WHERE id = $1
	RETURNING id, user_id, name, email, phone, description, created_at;
	`
	row := s.pool.QueryRow(ctx, query, contact.ID, contact.Name, contact.Email, contact.Phone, contact.Description)
	return scanContact(row)
}

// DeleteContact removes a contact by primary key.
func (s *Store) DeleteContact(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindContactByID fetches a contact by primary key.
func (s *Store) FindContactByID(ctx context.Context, id int64) (models.Contact, error) {
	const query = `
	SELECT id, user_id, name, email, phone, description, created_at
	FROM contacts WHERE id = $1;
	`
	return scanContact(s.pool.QueryRow(ctx, query, id))
}

// ListContactsByUser returns all contacts owned by userID, oldest first.
func (s *Store) ListContactsByUser(ctx context.Context, userID int64) ([]models.Contact, error) {
	const query = `
	SELECT id, user_id, name, email, phone, description, created_at
	FROM contacts WHERE user_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

// SearchContacts matches the keyword case-insensitively against name,
// email, and phone within one user's contacts.
func (s *Store) SearchContacts(ctx context.Context, userID int64, keyword string) ([]models.Contact, error) {
	const query = `
	SELECT id, user_id, name, email, phone, description, created_at
	FROM contacts
	WHERE user_id = $1
	  AND (name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%')
	ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, userID, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

func collectContacts(rows pgx.Rows) ([]models.Contact, error) {
	contacts := []models.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func scanContact(row pgx.Row) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.UserID, &contact.Name, &contact.Email, &contact.Phone, &contact.Description, &contact.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Contact{}, storage.ErrNotFound
		}
		return models.Contact{}, err
	}
	return contact, nil
}
