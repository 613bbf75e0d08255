package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.NotificationGateway = (*Client)(nil)

type recipientRecord struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Active bool   `json:"isActive"`
}

func (r recipientRecord) toDomain() console.Recipient {
	return console.Recipient{ID: r.ID, Name: r.Name, Kind: r.Kind, Active: r.Active}
}

// ListRecipients fetches one page of notification targets.
func (c *Client) ListRecipients(ctx context.Context, q console.ListQuery) (console.Page[console.Recipient], error) {
	var data pageEnvelope[recipientRecord]
	if err := c.post(ctx, "/notifications/recipients", listBody(q), &data); err != nil {
		return console.Page[console.Recipient]{}, err
	}
	return mapPage(data, recipientRecord.toDomain), nil
}

type broadcastPayload struct {
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Image      *console.Upload `json:"image,omitempty"`
	Recipients []string        `json:"recipients,omitempty"`
	Audience   string          `json:"audience,omitempty"`
	SendAt     *time.Time      `json:"sendAt,omitempty"`
}

// SendBroadcast pushes a notification to explicit recipient ids or to a whole
// audience. An attached image flips the request into multipart form data.
func (c *Client) SendBroadcast(ctx context.Context, b console.Broadcast) error {
	payload := broadcastPayload{
		Title:      b.Title,
		Body:       b.Body,
		Image:      b.Image,
		Recipients: b.Recipients,
		Audience:   string(b.Audience),
		SendAt:     b.SendAt,
	}
	return c.post(ctx, "/notifications/send", payload, nil)
}
