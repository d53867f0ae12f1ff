package project

import (
	"encoding/json"
	"time"
)

// Status is the display state of a project. No transition rules are
// enforced; the admin may set any value at any time.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Project is one unit of tracked client work.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ClientName  string     `json:"clientName"`
	ClientID    string     `json:"clientId"`
	Deadline    *time.Time `json:"-"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// wireProject carries the persisted JSON shape, where the deadline is an
// RFC 3339 string and an empty string means "no deadline".
type wireProject struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ClientName  string    `json:"clientName"`
	ClientID    string    `json:"clientId"`
	Deadline    string    `json:"deadline"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MarshalJSON writes the deadline as an RFC 3339 string, empty when unset.
func (p Project) MarshalJSON() ([]byte, error) {
	w := wireProject{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ClientName:  p.ClientName,
		ClientID:    p.ClientID,
		Status:      p.Status,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
	if p.Deadline != nil {
		w.Deadline = p.Deadline.Format(time.RFC3339Nano)
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the persisted shape; an absent or empty deadline
// becomes nil.
func (p *Project) UnmarshalJSON(data []byte) error {
	var w wireProject
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Project{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		ClientName:  w.ClientName,
		ClientID:    w.ClientID,
		Status:      w.Status,
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
	}
	if w.Deadline != "" {
		due, err := time.Parse(time.RFC3339Nano, w.Deadline)
		if err != nil {
			return err
		}
		p.Deadline = &due
	}
	return nil
}
