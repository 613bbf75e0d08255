package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.OrderDesk = (*Client)(nil)

type slotRecord struct {
	ID        string    `json:"_id"`
	Start     time.Time `json:"startTime"`
	End       time.Time `json:"endTime"`
	VendorIDs []string  `json:"vendorIds"`
	Available bool      `json:"isAvailable"`
}

func (r slotRecord) toDomain() console.Slot {
	return console.Slot{
		ID:        r.ID,
		Start:     r.Start,
		End:       r.End,
		VendorIDs: r.VendorIDs,
		Available: r.Available,
	}
}

type paymentRecord struct {
	Mode          string     `json:"mode"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId"`
	PaidAt        *time.Time `json:"paidAt"`
}

type orderRecord struct {
	ID              string         `json:"_id"`
	CustomerID      string         `json:"customerId"`
	CustomerName    string         `json:"customerName"`
	SubcategoryID   string         `json:"subCategoryId"`
	SubcategoryName string         `json:"subCategoryName"`
	Price           float64        `json:"price"`
	VendorID        string         `json:"vendorId"`
	VendorName      string         `json:"vendorName"`
	SlotID          string         `json:"slotId"`
	SlotStart       time.Time      `json:"slotStart"`
	SlotEnd         time.Time      `json:"slotEnd"`
	Status          string         `json:"status"`
	TotalPrice      float64        `json:"totalPrice"`
	Payment         *paymentRecord `json:"payment"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (r orderRecord) toDomain() console.Order {
	order := console.Order{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		SubcategoryID:   r.SubcategoryID,
		SubcategoryName: r.SubcategoryName,
		Price:           r.Price,
		VendorID:        r.VendorID,
		VendorName:      r.VendorName,
		Slot: console.ScheduledSlot{
			SlotID: r.SlotID,
			Start:  r.SlotStart,
			End:    r.SlotEnd,
		},
		Status:     console.OrderStatus(r.Status),
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt,
	}
	if r.Payment != nil {
		order.Payment = &console.Payment{
			Mode:          r.Payment.Mode,
			Amount:        r.Payment.Amount,
			Status:        console.PaymentStatus(r.Payment.Status),
			TransactionID: r.Payment.TransactionID,
			PaidAt:        r.Payment.PaidAt,
		}
	}
	return order
}

// ListOrders fetches one page of bookings.
func (c *Client) ListOrders(ctx context.Context, q console.ListQuery) (console.Page[console.Order], error) {
	var data pageEnvelope[orderRecord]
	if err := c.post(ctx, "/orders/list", listBody(q), &data); err != nil {
		return console.Page[console.Order]{}, err
	}
	return mapPage(data, orderRecord.toDomain), nil
}

// GetOrder fetches a single booking.
func (c *Client) GetOrder(ctx context.Context, id string) (console.Order, error) {
	var record orderRecord
	if err := c.post(ctx, "/orders/get", idPayload{ID: id}, &record); err != nil {
		return console.Order{}, err
	}
	return record.toDomain(), nil
}

type availableVendorsPayload struct {
	SubcategoryID string `json:"subCategoryId"`
	SlotID        string `json:"slotId"`
}

// AvailableVendors lists vendors able to serve a subcategory within a slot.
func (c *Client) AvailableVendors(ctx context.Context, subcategoryID, slotID string) ([]console.Vendor, error) {
	var records []vendorRecord
	payload := availableVendorsPayload{SubcategoryID: subcategoryID, SlotID: slotID}
	if err := c.post(ctx, "/availableVendors", payload, &records); err != nil {
		return nil, err
	}
	vendors := make([]console.Vendor, len(records))
	for i, record := range records {
		vendors[i] = record.toDomain()
	}
	return vendors, nil
}

type assignPayload struct {
	OrderID  string `json:"orderId"`
	VendorID string `json:"vendorId"`
}

// AssignOrder hands a booking to a vendor on the operator's behalf.
func (c *Client) AssignOrder(ctx context.Context, orderID, vendorID string) error {
	return c.post(ctx, "/assignSlotByAdmin", assignPayload{OrderID: orderID, VendorID: vendorID}, nil)
}

type slotsPayload struct {
	Date string `json:"date"`
}

// ListSlots fetches the bookable windows for one day.
func (c *Client) ListSlots(ctx context.Context, day time.Time) ([]console.Slot, error) {
	var records []slotRecord
	if err := c.post(ctx, "/availableSlots", slotsPayload{Date: day.Format(time.DateOnly)}, &records); err != nil {
		return nil, err
	}
	slots := make([]console.Slot, len(records))
	for i, record := range records {
		slots[i] = record.toDomain()
	}
	return slots, nil
}

type slotAvailabilityPayload struct {
	SlotID    string `json:"slotId"`
	Available bool   `json:"isAvailable"`
}

// SetSlotAvailability opens or closes a slot.
func (c *Client) SetSlotAvailability(ctx context.Context, slotID string, available bool) error {
	payload := slotAvailabilityPayload{SlotID: slotID, Available: available}
	return c.post(ctx, "/updateSlotAvailability", payload, nil)
}
