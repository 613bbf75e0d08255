package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.AdminDirectory = (*Client)(nil)

type adminRecord struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r adminRecord) toDomain() console.Admin {
	return console.Admin{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

type adminPayload struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"isActive"`
}

// ListAdmins fetches one page of operator accounts.
func (c *Client) ListAdmins(ctx context.Context, q console.ListQuery) (console.Page[console.Admin], error) {
	var data pageEnvelope[adminRecord]
	if err := c.post(ctx, "/admins", listBody(q), &data); err != nil {
		return console.Page[console.Admin]{}, err
	}
	return mapPage(data, adminRecord.toDomain), nil
}

// CreateAdmin registers a new operator account.
func (c *Client) CreateAdmin(ctx context.Context, input console.AdminInput) (console.Admin, error) {
	var record adminRecord
	payload := adminPayload{Name: input.Name, Email: input.Email, Active: input.Active}
	if err := c.post(ctx, "/admins/create", payload, &record); err != nil {
		return console.Admin{}, err
	}
	return record.toDomain(), nil
}

// UpdateAdmin replaces an operator account's mutable fields.
func (c *Client) UpdateAdmin(ctx context.Context, id string, input console.AdminInput) (console.Admin, error) {
	var record adminRecord
	payload := adminPayload{ID: id, Name: input.Name, Email: input.Email, Active: input.Active}
	if err := c.post(ctx, "/admins/update", payload, &record); err != nil {
		return console.Admin{}, err
	}
	return record.toDomain(), nil
}

// DeleteAdmin removes an operator account.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.post(ctx, "/admins/delete", idPayload{ID: id}, nil)
}

// ToggleAdmin flips an operator account's active flag.
func (c *Client) ToggleAdmin(ctx context.Context, id string, active bool) error {
	return c.post(ctx, "/admins/toggle", togglePayload{ID: id, Active: active}, nil)
}

type idPayload struct {
	ID string `json:"id"`
}

type togglePayload struct {
	ID     string `json:"id"`
	Active bool   `json:"isActive"`
}

func listBody(q console.ListQuery) listRequest {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = 10
	}
	return listRequest{Page: page, PerPage: perPage, Search: q.Search, Filters: q.Filters}
}

func mapPage[W, D any](data pageEnvelope[W], convert func(W) D) console.Page[D] {
	records := make([]D, len(data.Records))
	for i, record := range data.Records {
		records[i] = convert(record)
	}
	return console.Page[D]{
		Records:      records,
		CurrentPage:  data.CurrentPage,
		TotalPages:   data.TotalPages,
		TotalRecords: data.TotalRecords,
	}
}
