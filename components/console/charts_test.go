package console

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrends() PerformanceReport {
	return PerformanceReport{
		ActivePartners: 64,
		AvgRating:      4.2,
		Trends: []TrendPoint{
			{Label: "W1", Bookings: 30, Completed: 25, Revenue: 9000},
			{Label: "W2", Bookings: 42, Completed: 38, Revenue: 12600},
		},
	}
}

func TestPerformanceTrendRendersSeries(t *testing.T) {
	t.Parallel()
	renderer := NewChartRenderer(WithChartCache(NewChartCache(0)))

	html, err := renderer.PerformanceTrend(PeriodLastMonth, sampleTrends())
	require.NoError(t, err)

	assert.Contains(t, html, "Partner Performance")
	assert.Contains(t, html, "Bookings")
	assert.Contains(t, html, "Completed")
	assert.Contains(t, html, "W1")
}

func TestPerformanceTrendRequiresBuckets(t *testing.T) {
	t.Parallel()
	renderer := NewChartRenderer()
	_, err := renderer.PerformanceTrend(PeriodLastMonth, PerformanceReport{})
	require.Error(t, err)
}

func TestTopServicesChartRendersBars(t *testing.T) {
	t.Parallel()
	renderer := NewChartRenderer(WithChartCache(NewChartCache(0)))

	html, err := renderer.TopServicesChart(PeriodOneYear, []RankedService{
		{ServiceID: "s1", Name: "Deep Cleaning", Bookings: 120, Revenue: 54000},
		{ServiceID: "s2", Name: "Plumbing", Bookings: 80, Revenue: 32000},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Top Services by Revenue")
	assert.Contains(t, html, "Deep Cleaning")
	assert.Contains(t, html, "Plumbing")
}

func TestTopServicesChartRequiresRows(t *testing.T) {
	t.Parallel()
	renderer := NewChartRenderer()
	_, err := renderer.TopServicesChart(PeriodOneYear, nil)
	require.Error(t, err)
}

func TestChartRendererUsesCache(t *testing.T) {
	t.Parallel()
	cache := NewChartCache(time.Minute)
	renderer := NewChartRenderer(WithChartCache(cache))

	first, err := renderer.TopServicesChart(PeriodLastMonth, []RankedService{{Name: "Cleaning", Revenue: 100}})
	require.NoError(t, err)
	second, err := renderer.TopServicesChart(PeriodLastMonth, []RankedService{{Name: "Cleaning", Revenue: 100}})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChartRendererAssetsHost(t *testing.T) {
	t.Parallel()
	renderer := NewChartRenderer(
		WithChartCache(NewChartCache(0)),
		WithChartAssetsHost("https://cdn.example.com/echarts/"),
	)
	html, err := renderer.TopServicesChart(PeriodLastMonth, []RankedService{{Name: "Cleaning", Revenue: 100}})
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "cdn.example.com"), "expected rewritten assets host")
}
