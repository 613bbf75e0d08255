package console

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartRendererOption customizes the dashboard chart renderer.
type ChartRendererOption func(*ChartRenderer)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) ChartRendererOption {
	return func(r *ChartRenderer) { r.cache = cache }
}

// WithChartTheme sets the echarts theme (defaults to Westeros).
func WithChartTheme(theme string) ChartRendererOption {
	return func(r *ChartRenderer) { r.theme = theme }
}

// WithChartAssetsHost rewrites the assets host so the ECharts runtime loads
// from a CDN.
func WithChartAssetsHost(host string) ChartRendererOption {
	return func(r *ChartRenderer) { r.assetsHost = host }
}

// ChartRenderer turns Overview slices into server-rendered chart HTML.
type ChartRenderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// NewChartRenderer builds a renderer with shared cache and default theme.
func NewChartRenderer(options ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{
		cache: sharedChartCache,
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// PerformanceTrend renders the partner performance trend as a smooth line
// chart: bookings vs completed jobs per bucket.
func (r *ChartRenderer) PerformanceTrend(period Period, report PerformanceReport) (string, error) {
	if len(report.Trends) == 0 {
		return "", fmt.Errorf("console: performance report has no trend buckets")
	}
	render := func() (string, error) {
		labels := make([]string, len(report.Trends))
		bookings := make([]opts.LineData, len(report.Trends))
		completed := make([]opts.LineData, len(report.Trends))
		for i, t := range report.Trends {
			labels[i] = t.Label
			bookings[i] = opts.LineData{Value: t.Bookings}
			completed[i] = opts.LineData{Value: t.Completed}
		}
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalChartOptions("Partner Performance", string(period))...)
		line.SetXAxis(labels)
		line.AddSeries("Bookings", bookings)
		line.AddSeries("Completed", completed)
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	}
	if r.cache == nil {
		return render()
	}
	key := fmt.Sprintf("trend:%s:%s", period, payloadHash(report))
	return r.cache.GetOrRender(key, render)
}

// TopServicesChart renders revenue per top service as a bar chart.
func (r *ChartRenderer) TopServicesChart(period Period, services []RankedService) (string, error) {
	if len(services) == 0 {
		return "", fmt.Errorf("console: no ranked services to chart")
	}
	render := func() (string, error) {
		labels := make([]string, len(services))
		revenue := make([]opts.BarData, len(services))
		for i, s := range services {
			labels[i] = s.Name
			revenue[i] = opts.BarData{Value: s.Revenue}
		}
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalChartOptions("Top Services by Revenue", string(period))...)
		bar.SetXAxis(labels)
		bar.AddSeries("Revenue", revenue)
		return renderChart(bar)
	}
	if r.cache == nil {
		return render()
	}
	key := fmt.Sprintf("services:%s:%s", period, payloadHash(services))
	return r.cache.GetOrRender(key, render)
}

func (r *ChartRenderer) globalChartOptions(title, subtitle string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
