package console

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Period is the dashboard reporting window.
type Period string

const (
	PeriodLastMonth   Period = "1m"
	PeriodThreeMonths Period = "3m"
	PeriodSixMonths   Period = "6m"
	PeriodOneYear     Period = "1y"
)

// Periods lists the selectable windows in display order.
func Periods() []Period {
	return []Period{PeriodLastMonth, PeriodThreeMonths, PeriodSixMonths, PeriodOneYear}
}

// Valid reports whether the period is one of the fixed enumeration.
func (p Period) Valid() bool {
	switch p {
	case PeriodLastMonth, PeriodThreeMonths, PeriodSixMonths, PeriodOneYear:
		return true
	}
	return false
}

// HeadlineTotals are the four top-line counters.
type HeadlineTotals struct {
	Users    int
	Partners int
	Bookings int
	Revenue  float64
}

// RankedService is one row of the top-services section.
type RankedService struct {
	ServiceID string
	Name      string
	Bookings  int
	Revenue   float64
}

// RankedPartner is one row of the top-partners section.
type RankedPartner struct {
	VendorID string
	Name     string
	Bookings int
	Revenue  float64
	Rating   float64
}

// Satisfaction summarizes review sentiment.
type Satisfaction struct {
	AverageRating float64
	ReviewCount   int
	Percent       float64
}

// RetentionSegment is one cohort bucket of the optional retention sub-report.
type RetentionSegment struct {
	Label     string
	Customers int
	Percent   float64
}

// TopCustomer is one row of the optional retention sub-report.
type TopCustomer struct {
	CustomerID string
	Name       string
	Bookings   int
	Spend      float64
}

// RetentionReport is the optional customer-retention sub-report.
type RetentionReport struct {
	Segments     []RetentionSegment
	TopCustomers []TopCustomer
}

// TrendPoint is one bucket of the partner performance trend series.
type TrendPoint struct {
	Label     string
	Bookings  int
	Completed int
	Revenue   float64
}

// PerformanceReport is the optional service-partner performance sub-report.
type PerformanceReport struct {
	ActivePartners  int
	AvgResponseRate float64
	AvgRating       float64
	Trends          []TrendPoint
}

// Overview is the composite analytics payload fetched once per period. Every
// number displayed by the dashboard is taken verbatim from this payload; the
// console performs no aggregation of its own.
type Overview struct {
	Period       Period
	Totals       HeadlineTotals
	TopServices  []RankedService
	TopPartners  []RankedPartner
	Satisfaction Satisfaction
	Activity     []ActivityEntry
	Retention    *RetentionReport
	Performance  *PerformanceReport
	GeneratedAt  time.Time
}

// ReportSource fetches the composite dashboard payload.
type ReportSource interface {
	FetchOverview(ctx context.Context, period Period) (Overview, error)
}

// SectionData is an opaque payload handed to templates.
type SectionData map[string]any

// SectionContext carries what a section provider needs to shape its data.
type SectionContext struct {
	Overview Overview
	Locale   string
}

// SectionProvider turns one slice of the Overview into template data.
type SectionProvider interface {
	Build(ctx context.Context, meta SectionContext) (SectionData, error)
}

// SectionFunc adapts a function to SectionProvider.
type SectionFunc func(ctx context.Context, meta SectionContext) (SectionData, error)

// Build implements SectionProvider.
func (f SectionFunc) Build(ctx context.Context, meta SectionContext) (SectionData, error) {
	return f(ctx, meta)
}

// AggregatorOption customizes the Aggregator.
type AggregatorOption func(*Aggregator)

// WithOverviewTTL sets the per-period memoization window (default 1 minute,
// zero disables caching).
func WithOverviewTTL(ttl time.Duration) AggregatorOption {
	return func(a *Aggregator) { a.cache = newTTLCache[Period, Overview](ttl) }
}

// WithSection registers or replaces one named section provider.
func WithSection(name string, provider SectionProvider) AggregatorOption {
	return func(a *Aggregator) { a.register(name, provider) }
}

// Aggregator fetches one composite payload per period and fans it out into
// independent named sections.
type Aggregator struct {
	source ReportSource
	// Overview fetches are memoized per period so switching back and forth
	// between windows stays cheap.
	cache *ttlCache[Period, Overview]

	mu       sync.RWMutex
	order    []string
	sections map[string]SectionProvider
}

// NewAggregator wires the report source with the default section set.
func NewAggregator(source ReportSource, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		source:   source,
		cache:    newTTLCache[Period, Overview](time.Minute),
		sections: map[string]SectionProvider{},
	}
	for name, provider := range defaultSections() {
		a.register(name, provider)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) register(name string, provider SectionProvider) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.sections[name]; !ok {
		a.order = append(a.order, name)
	}
	a.sections[name] = provider
}

// Sections returns the registered section names in registration order.
func (a *Aggregator) Sections() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string{}, a.order...)
}

// Snapshot is the fanned-out dashboard state for one period.
type Snapshot struct {
	Period   Period
	Overview Overview
	Sections map[string]SectionData
}

// Load fetches (or reuses) the period's Overview and builds every section.
// Optional sub-reports produce no section when absent from the payload.
func (a *Aggregator) Load(ctx context.Context, period Period, locale string) (Snapshot, error) {
	if !period.Valid() {
		return Snapshot{}, fmt.Errorf("console: unknown reporting period %q", period)
	}
	if a.source == nil {
		return Snapshot{}, fmt.Errorf("console: aggregator requires a report source")
	}
	overview, ok := a.cache.get(period)
	if !ok {
		var err error
		overview, err = a.source.FetchOverview(ctx, period)
		if err != nil {
			return Snapshot{}, fmt.Errorf("console: fetch overview: %w", err)
		}
		a.cache.set(period, overview)
	}

	snap := Snapshot{
		Period:   period,
		Overview: overview,
		Sections: map[string]SectionData{},
	}
	meta := SectionContext{Overview: overview, Locale: locale}
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, name := range a.order {
		data, err := a.sections[name].Build(ctx, meta)
		if err != nil {
			return Snapshot{}, fmt.Errorf("console: build section %s: %w", name, err)
		}
		if data == nil {
			continue
		}
		snap.Sections[name] = data
	}
	return snap, nil
}
