package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.CustomerDirectory = (*Client)(nil)

type addressRecord struct {
	Pincode     string `json:"pincode"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	FullAddress string `json:"fullAddress"`
}

func (r addressRecord) toDomain() console.Address {
	return console.Address{
		Pincode:     r.Pincode,
		Street:      r.Street,
		City:        r.City,
		State:       r.State,
		FullAddress: r.FullAddress,
	}
}

type customerRecord struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	Mobile        string        `json:"mobileNo"`
	Email         string        `json:"email"`
	Active        bool          `json:"isActive"`
	Verified      bool          `json:"isVerified"`
	WalletBalance float64       `json:"walletBalance"`
	Address       addressRecord `json:"address"`
	Gender        string        `json:"gender"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (r customerRecord) toDomain() console.Customer {
	return console.Customer{
		ID:            r.ID,
		Name:          r.Name,
		Mobile:        r.Mobile,
		Email:         r.Email,
		Active:        r.Active,
		Verified:      r.Verified,
		WalletBalance: r.WalletBalance,
		Address:       r.Address.toDomain(),
		Gender:        console.Gender(r.Gender),
		CreatedAt:     r.CreatedAt,
	}
}

type customerPayload struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name"`
	Mobile        string         `json:"mobileNo"`
	Email         string         `json:"email,omitempty"`
	Active        *bool          `json:"isActive,omitempty"`
	Verified      *bool          `json:"isVerified,omitempty"`
	WalletBalance *float64       `json:"walletBalance,omitempty"`
	Address       *addressRecord `json:"address,omitempty"`
	Gender        string         `json:"gender,omitempty"`
}

func customerBody(id string, input console.CustomerInput) customerPayload {
	payload := customerPayload{
		ID:            id,
		Name:          input.Name,
		Mobile:        input.Mobile,
		Email:         input.Email,
		Active:        input.Active,
		Verified:      input.Verified,
		WalletBalance: input.WalletBalance,
		Gender:        string(input.Gender),
	}
	if input.Address != nil {
		payload.Address = &addressRecord{
			Pincode:     input.Address.Pincode,
			Street:      input.Address.Street,
			City:        input.Address.City,
			State:       input.Address.State,
			FullAddress: input.Address.FullAddress,
		}
	}
	return payload
}

// ListCustomers fetches one page of customers. Customer operations go to the
// customer host, which may differ from the admin host.
func (c *Client) ListCustomers(ctx context.Context, q console.ListQuery) (console.Page[console.Customer], error) {
	var data pageEnvelope[customerRecord]
	if err := c.postCustomer(ctx, "/customers/list", listBody(q), &data); err != nil {
		return console.Page[console.Customer]{}, err
	}
	return mapPage(data, customerRecord.toDomain), nil
}

// GetCustomer fetches a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (console.Customer, error) {
	var record customerRecord
	if err := c.postCustomer(ctx, "/customers/get", idPayload{ID: id}, &record); err != nil {
		return console.Customer{}, err
	}
	return record.toDomain(), nil
}

// CreateCustomer registers a customer.
func (c *Client) CreateCustomer(ctx context.Context, input console.CustomerInput) (console.Customer, error) {
	var record customerRecord
	if err := c.postCustomer(ctx, "/customers/create", customerBody("", input), &record); err != nil {
		return console.Customer{}, err
	}
	return record.toDomain(), nil
}

// UpdateCustomer applies the provided subset of mutable fields.
func (c *Client) UpdateCustomer(ctx context.Context, id string, input console.CustomerInput) (console.Customer, error) {
	var record customerRecord
	if err := c.postCustomer(ctx, "/customers/update", customerBody(id, input), &record); err != nil {
		return console.Customer{}, err
	}
	return record.toDomain(), nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.postCustomer(ctx, "/customers/delete", idPayload{ID: id}, nil)
}
