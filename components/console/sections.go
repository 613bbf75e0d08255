package console

import "context"

// Section names used by the default dashboard layout.
const (
	SectionHeadline     = "admin.section.headline"
	SectionTopServices  = "admin.section.top_services"
	SectionTopPartners  = "admin.section.top_partners"
	SectionSatisfaction = "admin.section.satisfaction"
	SectionActivity     = "admin.section.recent_activity"
	SectionRetention    = "admin.section.retention"
	SectionPerformance  = "admin.section.performance"
)

func defaultSections() map[string]SectionProvider {
	return map[string]SectionProvider{
		SectionHeadline: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			t := meta.Overview.Totals
			return SectionData{
				"users":    t.Users,
				"partners": t.Partners,
				"bookings": t.Bookings,
				"revenue":  FormatINR(t.Revenue),
			}, nil
		}),
		SectionTopServices: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			rows := make([]map[string]any, 0, len(meta.Overview.TopServices))
			for _, s := range meta.Overview.TopServices {
				rows = append(rows, map[string]any{
					"name":     s.Name,
					"bookings": s.Bookings,
					"revenue":  FormatINR(s.Revenue),
				})
			}
			return SectionData{"rows": rows}, nil
		}),
		SectionTopPartners: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			rows := make([]map[string]any, 0, len(meta.Overview.TopPartners))
			for _, p := range meta.Overview.TopPartners {
				rows = append(rows, map[string]any{
					"name":     p.Name,
					"initials": Initials(p.Name),
					"bookings": p.Bookings,
					"revenue":  FormatINR(p.Revenue),
					"rating":   FormatRating(p.Rating),
				})
			}
			return SectionData{"rows": rows}, nil
		}),
		SectionSatisfaction: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			s := meta.Overview.Satisfaction
			return SectionData{
				"rating":  FormatRating(s.AverageRating),
				"reviews": s.ReviewCount,
				"percent": s.Percent,
			}, nil
		}),
		SectionActivity: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			items := make([]map[string]any, 0, len(meta.Overview.Activity))
			for _, e := range meta.Overview.Activity {
				items = append(items, map[string]any{
					"icon":   ActivityIcon(e.Type),
					"title":  e.Title,
					"detail": e.Detail,
					"status": e.Status,
					"color":  StatusColor(e.Status),
					"at":     FormatDateTime(e.At),
				})
			}
			return SectionData{"items": items}, nil
		}),
		SectionRetention: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			r := meta.Overview.Retention
			if r == nil {
				// Optional sub-report; no section when the payload omits it.
				return nil, nil
			}
			segments := make([]map[string]any, 0, len(r.Segments))
			for _, seg := range r.Segments {
				segments = append(segments, map[string]any{
					"label":     seg.Label,
					"customers": seg.Customers,
					"percent":   seg.Percent,
				})
			}
			customers := make([]map[string]any, 0, len(r.TopCustomers))
			for _, c := range r.TopCustomers {
				customers = append(customers, map[string]any{
					"name":     c.Name,
					"initials": Initials(c.Name),
					"bookings": c.Bookings,
					"spend":    FormatINR(c.Spend),
				})
			}
			return SectionData{"segments": segments, "top_customers": customers}, nil
		}),
		SectionPerformance: SectionFunc(func(_ context.Context, meta SectionContext) (SectionData, error) {
			p := meta.Overview.Performance
			if p == nil {
				return nil, nil
			}
			trends := make([]map[string]any, 0, len(p.Trends))
			for _, t := range p.Trends {
				trends = append(trends, map[string]any{
					"label":     t.Label,
					"bookings":  t.Bookings,
					"completed": t.Completed,
					"revenue":   t.Revenue,
				})
			}
			return SectionData{
				"active_partners":   p.ActivePartners,
				"avg_response_rate": p.AvgResponseRate,
				"avg_rating":        FormatRating(p.AvgRating),
				"trends":            trends,
			}, nil
		}),
	}
}
