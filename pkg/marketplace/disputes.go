package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.DisputeDesk = (*Client)(nil)

type disputeRecord struct {
	ID            string    `json:"_id"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	VendorID      string    `json:"vendorId"`
	VendorName    string    `json:"vendorName"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	Description   string    `json:"description"`
	CustomerProof []string  `json:"customerProof"`
	VendorProof   []string  `json:"vendorProof"`
	Status        string    `json:"status"`
	Resolution    string    `json:"resolution"`
	RefundAmount  *float64  `json:"refundAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r disputeRecord) toDomain() console.Dispute {
	return console.Dispute{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		VendorID:      r.VendorID,
		VendorName:    r.VendorName,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		Description:   r.Description,
		CustomerProof: r.CustomerProof,
		VendorProof:   r.VendorProof,
		Status:        console.DisputeStatus(r.Status),
		Resolution:    r.Resolution,
		RefundAmount:  r.RefundAmount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ListDisputes fetches one page of disputes.
func (c *Client) ListDisputes(ctx context.Context, q console.ListQuery) (console.Page[console.Dispute], error) {
	var data pageEnvelope[disputeRecord]
	if err := c.post(ctx, "/disputes/list", listBody(q), &data); err != nil {
		return console.Page[console.Dispute]{}, err
	}
	return mapPage(data, disputeRecord.toDomain), nil
}

// GetDispute fetches a single dispute.
func (c *Client) GetDispute(ctx context.Context, id string) (console.Dispute, error) {
	var record disputeRecord
	if err := c.post(ctx, "/disputes/get", idPayload{ID: id}, &record); err != nil {
		return console.Dispute{}, err
	}
	return record.toDomain(), nil
}

type disputePayload struct {
	CustomerID  string            `json:"customerId"`
	VendorID    string            `json:"vendorId"`
	ServiceID   string            `json:"serviceId"`
	Description string            `json:"description"`
	Evidence    []*console.Upload `json:"evidence,omitempty"`
}

// CreateDispute opens a dispute on behalf of a customer. Evidence images flip
// the request into multipart form data.
func (c *Client) CreateDispute(ctx context.Context, input console.DisputeInput) (console.Dispute, error) {
	var record disputeRecord
	payload := disputePayload{
		CustomerID:  input.CustomerID,
		VendorID:    input.VendorID,
		ServiceID:   input.ServiceID,
		Description: input.Description,
		Evidence:    input.Evidence,
	}
	if err := c.post(ctx, "/disputes/create", payload, &record); err != nil {
		return console.Dispute{}, err
	}
	return record.toDomain(), nil
}

type disputeStatusPayload struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Resolution   string   `json:"resolution,omitempty"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
}

// UpdateDisputeStatus moves a dispute to any status. The backend owns the
// workflow rules.
func (c *Client) UpdateDisputeStatus(ctx context.Context, id string, status console.DisputeStatus, resolution string, refund *float64) error {
	payload := disputeStatusPayload{
		ID:           id,
		Status:       string(status),
		Resolution:   resolution,
		RefundAmount: refund,
	}
	return c.post(ctx, "/disputes/updateStatus", payload, nil)
}

// DeleteDispute removes a dispute.
func (c *Client) DeleteDispute(ctx context.Context, id string) error {
	return c.post(ctx, "/disputes/delete", idPayload{ID: id}, nil)
}

type disputeStatsRecord struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Closed     int `json:"closed"`
	Reopened   int `json:"reopen"`
	Total      int `json:"total"`
}

// DisputeStats fetches the aggregate dispute counters.
func (c *Client) DisputeStats(ctx context.Context) (console.DisputeStats, error) {
	var record disputeStatsRecord
	if err := c.post(ctx, "/disputes/stats", nil, &record); err != nil {
		return console.DisputeStats{}, err
	}
	return console.DisputeStats{
		Open:       record.Open,
		InProgress: record.InProgress,
		Closed:     record.Closed,
		Reopened:   record.Reopened,
		Total:      record.Total,
	}, nil
}
