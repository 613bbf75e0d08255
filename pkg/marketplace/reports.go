package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.ReportSource = (*Client)(nil)

type overviewRequest struct {
	Period string `json:"period"`
}

type rankedServiceRecord struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Bookings  int     `json:"bookings"`
	Revenue   float64 `json:"revenue"`
}

type rankedPartnerRecord struct {
	VendorID string  `json:"vendorId"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Rating   float64 `json:"rating"`
}

type activityRecord struct {
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	Detail string    `json:"detail"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type retentionRecord struct {
	Segments []struct {
		Label     string  `json:"label"`
		Customers int     `json:"customers"`
		Percent   float64 `json:"percent"`
	} `json:"segments"`
	TopCustomers []struct {
		CustomerID string  `json:"customerId"`
		Name       string  `json:"name"`
		Bookings   int     `json:"bookings"`
		Spend      float64 `json:"spend"`
	} `json:"topCustomers"`
}

type performanceRecordReport struct {
	ActivePartners  int     `json:"activePartners"`
	AvgResponseRate float64 `json:"avgResponseRate"`
	AvgRating       float64 `json:"avgRating"`
	Trends          []struct {
		Label     string  `json:"label"`
		Bookings  int     `json:"bookings"`
		Completed int     `json:"completed"`
		Revenue   float64 `json:"revenue"`
	} `json:"trends"`
}

type overviewRecord struct {
	Period string `json:"period"`
	Totals struct {
		Users    int     `json:"users"`
		Partners int     `json:"partners"`
		Bookings int     `json:"bookings"`
		Revenue  float64 `json:"revenue"`
	} `json:"totals"`
	TopServices  []rankedServiceRecord `json:"topServices"`
	TopPartners  []rankedPartnerRecord `json:"topPartners"`
	Satisfaction struct {
		AverageRating float64 `json:"averageRating"`
		ReviewCount   int     `json:"reviewCount"`
		Percent       float64 `json:"percent"`
	} `json:"satisfaction"`
	Activity    []activityRecord         `json:"activity"`
	Retention   *retentionRecord         `json:"retention"`
	Performance *performanceRecordReport `json:"performance"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

func (r overviewRecord) toDomain() console.Overview {
	overview := console.Overview{
		Period: console.Period(r.Period),
		Totals: console.HeadlineTotals{
			Users:    r.Totals.Users,
			Partners: r.Totals.Partners,
			Bookings: r.Totals.Bookings,
			Revenue:  r.Totals.Revenue,
		},
		Satisfaction: console.Satisfaction{
			AverageRating: r.Satisfaction.AverageRating,
			ReviewCount:   r.Satisfaction.ReviewCount,
			Percent:       r.Satisfaction.Percent,
		},
		GeneratedAt: r.GeneratedAt,
	}
	overview.TopServices = make([]console.RankedService, len(r.TopServices))
	for i, s := range r.TopServices {
		overview.TopServices[i] = console.RankedService{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Bookings:  s.Bookings,
			Revenue:   s.Revenue,
		}
	}
	overview.TopPartners = make([]console.RankedPartner, len(r.TopPartners))
	for i, p := range r.TopPartners {
		overview.TopPartners[i] = console.RankedPartner{
			VendorID: p.VendorID,
			Name:     p.Name,
			Bookings: p.Bookings,
			Revenue:  p.Revenue,
			Rating:   p.Rating,
		}
	}
	overview.Activity = make([]console.ActivityEntry, len(r.Activity))
	for i, a := range r.Activity {
		overview.Activity[i] = console.ActivityEntry{
			Type:   console.ActivityType(a.Type),
			Title:  a.Title,
			Detail: a.Detail,
			Status: a.Status,
			At:     a.At,
		}
	}
	if r.Retention != nil {
		retention := &console.RetentionReport{}
		retention.Segments = make([]console.RetentionSegment, len(r.Retention.Segments))
		for i, seg := range r.Retention.Segments {
			retention.Segments[i] = console.RetentionSegment{
				Label:     seg.Label,
				Customers: seg.Customers,
				Percent:   seg.Percent,
			}
		}
		retention.TopCustomers = make([]console.TopCustomer, len(r.Retention.TopCustomers))
		for i, top := range r.Retention.TopCustomers {
			retention.TopCustomers[i] = console.TopCustomer{
				CustomerID: top.CustomerID,
				Name:       top.Name,
				Bookings:   top.Bookings,
				Spend:      top.Spend,
			}
		}
		overview.Retention = retention
	}
	if r.Performance != nil {
		performance := &console.PerformanceReport{
			ActivePartners:  r.Performance.ActivePartners,
			AvgResponseRate: r.Performance.AvgResponseRate,
			AvgRating:       r.Performance.AvgRating,
		}
		performance.Trends = make([]console.TrendPoint, len(r.Performance.Trends))
		for i, point := range r.Performance.Trends {
			performance.Trends[i] = console.TrendPoint{
				Label:     point.Label,
				Bookings:  point.Bookings,
				Completed: point.Completed,
				Revenue:   point.Revenue,
			}
		}
		overview.Performance = performance
	}
	return overview
}

// FetchOverview fetches the composite dashboard payload for one period. The
// console takes every number verbatim and does no aggregation of its own.
func (c *Client) FetchOverview(ctx context.Context, period console.Period) (console.Overview, error) {
	var record overviewRecord
	if err := c.post(ctx, "/reports/overview", overviewRequest{Period: string(period)}, &record); err != nil {
		return console.Overview{}, err
	}
	return record.toDomain(), nil
}
