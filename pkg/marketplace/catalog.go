package marketplace

import (
	"context"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.CatalogDirectory = (*Client)(nil)

type subcategoryRecord struct {
	ID              string   `json:"_id"`
	ServiceID       string   `json:"serviceId"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	BasePrice       float64  `json:"basePrice"`
	PriceType       string   `json:"priceType"`
	DurationMinutes int      `json:"duration"`
	Active          bool     `json:"isActive"`
	Images          []string `json:"images"`
}

func (r subcategoryRecord) toDomain() console.Subcategory {
	return console.Subcategory{
		ID:              r.ID,
		ServiceID:       r.ServiceID,
		Name:            r.Name,
		Description:     r.Description,
		BasePrice:       r.BasePrice,
		PriceType:       console.PriceType(r.PriceType),
		DurationMinutes: r.DurationMinutes,
		Active:          r.Active,
		Images:          r.Images,
	}
}

type serviceRecord struct {
	ID            string              `json:"_id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Image         string              `json:"image"`
	Active        bool                `json:"isActive"`
	DisplayOrder  int                 `json:"displayOrder"`
	Subcategories []subcategoryRecord `json:"subCategories"`
}

func (r serviceRecord) toDomain() console.ServiceCategory {
	subs := make([]console.Subcategory, len(r.Subcategories))
	for i, sub := range r.Subcategories {
		subs[i] = sub.toDomain()
	}
	return console.ServiceCategory{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Image:         r.Image,
		Active:        r.Active,
		DisplayOrder:  r.DisplayOrder,
		Subcategories: subs,
	}
}

type servicePayload struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Image        *console.Upload `json:"image,omitempty"`
	Active       bool            `json:"isActive"`
	DisplayOrder int             `json:"displayOrder"`
}

func serviceBody(id string, input console.ServiceInput) servicePayload {
	return servicePayload{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Image:        input.Image,
		Active:       input.Active,
		DisplayOrder: input.DisplayOrder,
	}
}

type subcategoryPayload struct {
	ID              string            `json:"id,omitempty"`
	ServiceID       string            `json:"serviceId"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePrice       float64           `json:"basePrice"`
	PriceType       string            `json:"priceType"`
	DurationMinutes int               `json:"duration"`
	Active          bool              `json:"isActive"`
	Images          []*console.Upload `json:"images,omitempty"`
}

func subcategoryBody(id string, input console.SubcategoryInput) subcategoryPayload {
	return subcategoryPayload{
		ID:              id,
		ServiceID:       input.ServiceID,
		Name:            input.Name,
		Description:     input.Description,
		BasePrice:       input.BasePrice,
		PriceType:       string(input.PriceType),
		DurationMinutes: input.DurationMinutes,
		Active:          input.Active,
		Images:          input.Images,
	}
}

// ListServices fetches one page of catalog categories, subcategories nested.
func (c *Client) ListServices(ctx context.Context, q console.ListQuery) (console.Page[console.ServiceCategory], error) {
	var data pageEnvelope[serviceRecord]
	if err := c.post(ctx, "/services/list", listBody(q), &data); err != nil {
		return console.Page[console.ServiceCategory]{}, err
	}
	return mapPage(data, serviceRecord.toDomain), nil
}

// GetService fetches a single catalog category.
func (c *Client) GetService(ctx context.Context, id string) (console.ServiceCategory, error) {
	var record serviceRecord
	if err := c.post(ctx, "/services/get", idPayload{ID: id}, &record); err != nil {
		return console.ServiceCategory{}, err
	}
	return record.toDomain(), nil
}

// CreateService adds a catalog category.
func (c *Client) CreateService(ctx context.Context, input console.ServiceInput) (console.ServiceCategory, error) {
	var record serviceRecord
	if err := c.post(ctx, "/services/create", serviceBody("", input), &record); err != nil {
		return console.ServiceCategory{}, err
	}
	return record.toDomain(), nil
}

// UpdateService replaces a catalog category's fields.
func (c *Client) UpdateService(ctx context.Context, id string, input console.ServiceInput) (console.ServiceCategory, error) {
	var record serviceRecord
	if err := c.post(ctx, "/services/update", serviceBody(id, input), &record); err != nil {
		return console.ServiceCategory{}, err
	}
	return record.toDomain(), nil
}

// DeleteService removes a catalog category.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.post(ctx, "/services/delete", idPayload{ID: id}, nil)
}

// SetServiceStatus sets a category's active flag.
func (c *Client) SetServiceStatus(ctx context.Context, id string, active bool) error {
	return c.post(ctx, "/services/status", togglePayload{ID: id, Active: active}, nil)
}

// CreateSubcategory adds a bookable unit under a category.
func (c *Client) CreateSubcategory(ctx context.Context, input console.SubcategoryInput) (console.Subcategory, error) {
	var record subcategoryRecord
	if err := c.post(ctx, "/subcategories/create", subcategoryBody("", input), &record); err != nil {
		return console.Subcategory{}, err
	}
	return record.toDomain(), nil
}

// UpdateSubcategory replaces a subcategory's fields.
func (c *Client) UpdateSubcategory(ctx context.Context, id string, input console.SubcategoryInput) (console.Subcategory, error) {
	var record subcategoryRecord
	if err := c.post(ctx, "/subcategories/update", subcategoryBody(id, input), &record); err != nil {
		return console.Subcategory{}, err
	}
	return record.toDomain(), nil
}

// DeleteSubcategory removes a subcategory.
func (c *Client) DeleteSubcategory(ctx context.Context, id string) error {
	return c.post(ctx, "/subcategories/delete", idPayload{ID: id}, nil)
}

// SetSubcategoryStatus sets a subcategory's active flag.
func (c *Client) SetSubcategoryStatus(ctx context.Context, id string, active bool) error {
	return c.post(ctx, "/subcategories/status", togglePayload{ID: id, Active: active}, nil)
}
