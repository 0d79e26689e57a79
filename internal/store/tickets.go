package store

import (
	"github.com/tcarver/tix/internal/models"
)

// ListTickets returns all tickets in insertion order, the order the
// portal renders them in.
func (s *Store) ListTickets() ([]models.Ticket, error) {
	rows, err := s.Query(`
		SELECT id, title, status, priority, company, assigned, created_at, updated_at
		FROM tickets
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.Priority, &t.Company, &t.Assigned, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// CreateTicket inserts a ticket and returns its id.
func (s *Store) CreateTicket(title, status, priority, company, assigned string) (int64, error) {
	result, err := s.Exec(`
		INSERT INTO tickets (title, status, priority, company, assigned) VALUES (?, ?, ?, ?, ?)
	`, title, status, priority, company, assigned)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Seed inserts sample tickets for a fresh development database. It is a
// no-op when tickets already exist.
func (s *Store) Seed() error {
	var n int
	if err := s.QueryRow("SELECT COUNT(*) FROM tickets").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	samples := []struct {
		title, status, priority, company, assigned string
	}{
		{"Printer offline in warehouse", "open", "high", "Acme", "dana"},
		{"Password reset loop", "open", "medium", "Globex", "lee"},
		{"Invoice export garbled", "pending", "low", "Acme", ""},
		{"VPN drops every hour", "open", "high", "Initech", "dana"},
		{"Knowledge base search empty", "closed", "medium", "Globex", "sam"},
		{"Shop checkout 500", "closed", "urgent", "Initech", "lee"},
	}
	for _, t := range samples {
		if _, err := s.CreateTicket(t.title, t.status, t.priority, t.company, t.assigned); err != nil {
			return err
		}
	}
	return nil
}
