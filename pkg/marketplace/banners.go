package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.BannerShelf = (*Client)(nil)

type bannerRecord struct {
	ID        string    `json:"_id"`
	Image     string    `json:"image"`
	TargetURL string    `json:"targetUrl"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r bannerRecord) toDomain() console.Banner {
	return console.Banner{
		ID:        r.ID,
		Image:     r.Image,
		TargetURL: r.TargetURL,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type bannerPayload struct {
	ID        string          `json:"id,omitempty"`
	Image     *console.Upload `json:"image,omitempty"`
	TargetURL string          `json:"targetUrl"`
	Active    bool            `json:"isActive"`
}

// ListBanners fetches one page of promotional banners.
func (c *Client) ListBanners(ctx context.Context, q console.ListQuery) (console.Page[console.Banner], error) {
	var data pageEnvelope[bannerRecord]
	if err := c.post(ctx, "/banners/list", listBody(q), &data); err != nil {
		return console.Page[console.Banner]{}, err
	}
	return mapPage(data, bannerRecord.toDomain), nil
}

// CreateBanner uploads a banner. The image rides as a multipart file part.
func (c *Client) CreateBanner(ctx context.Context, input console.BannerInput) (console.Banner, error) {
	var record bannerRecord
	payload := bannerPayload{Image: input.Image, TargetURL: input.TargetURL, Active: input.Active}
	if err := c.post(ctx, "/banners/create", payload, &record); err != nil {
		return console.Banner{}, err
	}
	return record.toDomain(), nil
}

// UpdateBanner replaces a banner's fields. A nil image keeps the stored one.
func (c *Client) UpdateBanner(ctx context.Context, id string, input console.BannerInput) (console.Banner, error) {
	var record bannerRecord
	payload := bannerPayload{ID: id, Image: input.Image, TargetURL: input.TargetURL, Active: input.Active}
	if err := c.post(ctx, "/banners/update", payload, &record); err != nil {
		return console.Banner{}, err
	}
	return record.toDomain(), nil
}

// DeleteBanner removes a banner.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.post(ctx, "/banners/delete", idPayload{ID: id}, nil)
}

// ToggleBanner flips a banner's active flag.
func (c *Client) ToggleBanner(ctx context.Context, id string, active bool) error {
	return c.post(ctx, "/banners/toggle", togglePayload{ID: id, Active: active}, nil)
}
