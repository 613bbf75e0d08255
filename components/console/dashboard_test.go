package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportSource struct {
	overview Overview
	err      error
	calls    int
}

func (f *fakeReportSource) FetchOverview(_ context.Context, period Period) (Overview, error) {
	f.calls++
	if f.err != nil {
		return Overview{}, f.err
	}
	o := f.overview
	o.Period = period
	return o, nil
}

func sampleOverview() Overview {
	return Overview{
		Totals: HeadlineTotals{Users: 1200, Partners: 80, Bookings: 450, Revenue: 125000},
		TopServices: []RankedService{
			{ServiceID: "s1", Name: "Deep Cleaning", Bookings: 120, Revenue: 54000},
		},
		TopPartners: []RankedPartner{
			{VendorID: "v1", Name: "Ravi Kumar", Bookings: 40, Revenue: 18000, Rating: 4.5},
		},
		Satisfaction: Satisfaction{AverageRating: 4.3, ReviewCount: 310, Percent: 86},
		Activity: []ActivityEntry{
			{Type: ActivityBooking, Title: "New booking", Status: "pending", At: time.Now()},
		},
		GeneratedAt: time.Now(),
	}
}

func TestAggregatorLoadFansOutSections(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	agg := NewAggregator(source)

	snap, err := agg.Load(context.Background(), PeriodLastMonth, "en")
	require.NoError(t, err)

	assert.Equal(t, PeriodLastMonth, snap.Period)
	require.Contains(t, snap.Sections, SectionHeadline)
	assert.Equal(t, "₹1,25,000", snap.Sections[SectionHeadline]["revenue"])
	require.Contains(t, snap.Sections, SectionTopPartners)

	rows := snap.Sections[SectionTopPartners]["rows"].([]map[string]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "RK", rows[0]["initials"])
	assert.Equal(t, "★ 4.5", rows[0]["rating"])
}

func TestAggregatorOptionalSectionsAbsent(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	agg := NewAggregator(source)

	snap, err := agg.Load(context.Background(), PeriodThreeMonths, "en")
	require.NoError(t, err)

	assert.NotContains(t, snap.Sections, SectionRetention)
	assert.NotContains(t, snap.Sections, SectionPerformance)
}

func TestAggregatorOptionalSectionsPresent(t *testing.T) {
	overview := sampleOverview()
	overview.Retention = &RetentionReport{
		Segments:     []RetentionSegment{{Label: "Repeat", Customers: 300, Percent: 25}},
		TopCustomers: []TopCustomer{{CustomerID: "c1", Name: "Asha", Bookings: 9, Spend: 12500}},
	}
	overview.Performance = &PerformanceReport{
		ActivePartners: 64,
		AvgRating:      4.2,
		Trends:         []TrendPoint{{Label: "W1", Bookings: 30, Completed: 25}},
	}
	source := &fakeReportSource{overview: overview}
	agg := NewAggregator(source)

	snap, err := agg.Load(context.Background(), PeriodOneYear, "en")
	require.NoError(t, err)

	require.Contains(t, snap.Sections, SectionRetention)
	customers := snap.Sections[SectionRetention]["top_customers"].([]map[string]any)
	require.Len(t, customers, 1)
	assert.Equal(t, "AS", customers[0]["initials"])

	require.Contains(t, snap.Sections, SectionPerformance)
	assert.Equal(t, 64, snap.Sections[SectionPerformance]["active_partners"])
}

func TestAggregatorRejectsUnknownPeriod(t *testing.T) {
	agg := NewAggregator(&fakeReportSource{overview: sampleOverview()})
	_, err := agg.Load(context.Background(), Period("2w"), "en")
	require.Error(t, err)
}

func TestAggregatorCachesPerPeriod(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	agg := NewAggregator(source, WithOverviewTTL(time.Minute))

	_, err := agg.Load(context.Background(), PeriodLastMonth, "en")
	require.NoError(t, err)
	_, err = agg.Load(context.Background(), PeriodLastMonth, "en")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	_, err = agg.Load(context.Background(), PeriodSixMonths, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls, "distinct periods fetch independently")
}

func TestAggregatorZeroTTLDisablesCache(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	agg := NewAggregator(source, WithOverviewTTL(0))

	for i := 0; i < 2; i++ {
		_, err := agg.Load(context.Background(), PeriodLastMonth, "en")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, source.calls)
}

func TestAggregatorCustomSection(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	agg := NewAggregator(source, WithSection("admin.section.custom", SectionFunc(
		func(_ context.Context, meta SectionContext) (SectionData, error) {
			return SectionData{"period": string(meta.Overview.Period)}, nil
		},
	)))

	snap, err := agg.Load(context.Background(), PeriodLastMonth, "en")
	require.NoError(t, err)
	require.Contains(t, snap.Sections, "admin.section.custom")
	assert.Equal(t, "1m", snap.Sections["admin.section.custom"]["period"])
}

func TestAggregatorSectionFailureSurfaces(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	boom := errors.New("shape failure")
	agg := NewAggregator(source, WithSection(SectionHeadline, SectionFunc(
		func(context.Context, SectionContext) (SectionData, error) { return nil, boom },
	)))

	_, err := agg.Load(context.Background(), PeriodLastMonth, "en")
	require.ErrorIs(t, err, boom)
}

func TestPeriodValid(t *testing.T) {
	for _, p := range Periods() {
		assert.True(t, p.Valid(), "period %s", p)
	}
	assert.False(t, Period("7d").Valid())
	assert.False(t, Period("").Valid())
}
