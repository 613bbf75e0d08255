package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	console "github.com/goliatone/go-marketplace-admin/components/console"
	"github.com/goliatone/go-marketplace-admin/pkg/marketplace"
)

type cli struct {
	Config string `type:"path" help:"Path to the endpoints YAML file (defaults to ~/.config/adminctl/config.yml)."`
	Env    string `type:"path" help:"Optional .env file loaded before reading the config."`

	Login     loginCmd     `cmd:"" help:"Authenticate and persist the bearer token."`
	Logout    logoutCmd    `cmd:"" help:"Clear the stored bearer token."`
	Customers customersCmd `cmd:"" help:"List or create customers."`
	Vendors   vendorsCmd   `cmd:"" help:"List or approve service partners."`
	Orders    ordersCmd    `cmd:"" help:"List bookings or assign one to a vendor."`
	Disputes  disputesCmd  `cmd:"" help:"List disputes or move one to a new status."`
	Broadcast broadcastCmd `cmd:"" help:"Send a notification broadcast."`
	Dashboard dashboardCmd `cmd:"" help:"Fetch the overview for a period and render it to HTML."`
}

// endpointsConfig is the YAML surface for pointing the CLI at a deployment.
type endpointsConfig struct {
	BaseURL         string `yaml:"base_url"`
	CustomerBaseURL string `yaml:"customer_base_url"`
	ImageOrigin     string `yaml:"image_origin"`
	TokenPath       string `yaml:"token_path"`
}

func main() {
	root := &cli{}
	ctx := kong.Parse(root,
		kong.Description("Operator CLI for the marketplace admin backend."),
		kong.UsageOnError(),
	)
	client, err := root.buildClient()
	ctx.FatalIfErrorf(err)
	err = ctx.Run(client)
	ctx.FatalIfErrorf(err)
}

func (c *cli) buildClient() (*marketplace.Client, error) {
	if c.Env != "" {
		if err := godotenv.Load(c.Env); err != nil {
			return nil, fmt.Errorf("adminctl: load env file: %w", err)
		}
	}
	cfg, err := loadEndpoints(c.Config)
	if err != nil {
		return nil, err
	}
	if v := os.Getenv("ADMINCTL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ADMINCTL_CUSTOMER_BASE_URL"); v != "" {
		cfg.CustomerBaseURL = v
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("adminctl: base_url missing (set it in the config file or ADMINCTL_BASE_URL)")
	}
	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		tokenPath = filepath.Join(configDir(), "token")
	}
	return marketplace.New(marketplace.Config{
		BaseURL:         cfg.BaseURL,
		CustomerBaseURL: cfg.CustomerBaseURL,
		ImageOrigin:     cfg.ImageOrigin,
		Tokens:          marketplace.NewFileTokenStore(tokenPath),
		UserAgent:       "adminctl",
	})
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "adminctl")
}

func loadEndpoints(path string) (endpointsConfig, error) {
	if path == "" {
		path = filepath.Join(configDir(), "config.yml")
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return endpointsConfig{}, nil
	}
	if err != nil {
		return endpointsConfig{}, fmt.Errorf("adminctl: read config: %w", err)
	}
	var cfg endpointsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return endpointsConfig{}, fmt.Errorf("adminctl: parse config: %w", err)
	}
	return cfg, nil
}

type loginCmd struct {
	Email    string `required:"" help:"Operator email."`
	Password string `required:"" help:"Operator password."`
}

func (cmd *loginCmd) Run(client *marketplace.Client) error {
	if err := client.SignIn(context.Background(), cmd.Email, cmd.Password); err != nil {
		return err
	}
	fmt.Println("signed in")
	return nil
}

type logoutCmd struct{}

func (cmd *logoutCmd) Run(client *marketplace.Client) error {
	if err := client.SignOut(context.Background()); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

type listFlags struct {
	Page    int    `default:"1" help:"1-based page."`
	PerPage int    `default:"10" help:"Rows per page."`
	Search  string `help:"Search text sent upstream."`
}

func (f listFlags) query() console.ListQuery {
	return console.ListQuery{Page: f.Page, PerPage: f.PerPage, Search: f.Search}
}

type customersCmd struct {
	List   customersListCmd   `cmd:"" default:"withargs" help:"List customers."`
	Create customersCreateCmd `cmd:"" help:"Create a customer."`
}

type customersListCmd struct {
	listFlags
}

func (cmd *customersListCmd) Run(client *marketplace.Client) error {
	page, err := client.ListCustomers(context.Background(), cmd.query())
	if err != nil {
		return err
	}
	table := newTable("ID", "Name", "Mobile", "WalletBalance", "Active")
	for _, customer := range page.Records {
		table.row(
			customer.ID,
			customer.Name,
			customer.Mobile,
			console.FormatINR(customer.WalletBalance),
			strconv.FormatBool(customer.Active),
		)
	}
	return flushTable(table, page)
}

type customersCreateCmd struct {
	Name   string `required:"" help:"Customer name."`
	Mobile string `required:"" help:"10-digit mobile number."`
	Email  string `help:"Optional email."`
}

func (cmd *customersCreateCmd) Run(client *marketplace.Client) error {
	if !console.ValidPhone(cmd.Mobile) {
		return fmt.Errorf("adminctl: mobile must be exactly 10 digits")
	}
	customer, err := client.CreateCustomer(context.Background(), console.CustomerInput{
		Name:   cmd.Name,
		Mobile: cmd.Mobile,
		Email:  cmd.Email,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created customer %s (%s)\n", customer.ID, console.Initials(customer.Name))
	return nil
}

type vendorsCmd struct {
	List    vendorsListCmd    `cmd:"" default:"withargs" help:"List service partners."`
	Approve vendorsApproveCmd `cmd:"" help:"Approve or revoke a service partner."`
}

type vendorsListCmd struct {
	listFlags
}

func (cmd *vendorsListCmd) Run(client *marketplace.Client) error {
	page, err := client.ListVendors(context.Background(), cmd.query())
	if err != nil {
		return err
	}
	table := newTable("ID", "Name", "BusinessName", "Rating", "Active", "Approved")
	for _, vendor := range page.Records {
		table.row(
			vendor.ID,
			vendor.Name,
			vendor.BusinessName,
			console.FormatRating(vendor.Performance.Rating),
			strconv.FormatBool(vendor.Active),
			strconv.FormatBool(vendor.Approved),
		)
	}
	return flushTable(table, page)
}

type vendorsApproveCmd struct {
	ID     string `arg:"" help:"Vendor id."`
	Revoke bool   `help:"Revoke approval instead of granting it."`
}

func (cmd *vendorsApproveCmd) Run(client *marketplace.Client) error {
	if err := client.ApproveVendor(context.Background(), cmd.ID, !cmd.Revoke); err != nil {
		return err
	}
	if cmd.Revoke {
		fmt.Printf("revoked approval for %s\n", cmd.ID)
	} else {
		fmt.Printf("approved %s\n", cmd.ID)
	}
	return nil
}

type ordersCmd struct {
	List   ordersListCmd   `cmd:"" default:"withargs" help:"List bookings."`
	Assign ordersAssignCmd `cmd:"" help:"Assign a pending booking to a vendor."`
}

type ordersListCmd struct {
	listFlags
	Status string `help:"Filter by status (pending, assigned, accepted, rejected, completed)."`
}

func (cmd *ordersListCmd) Run(client *marketplace.Client) error {
	query := cmd.query()
	if cmd.Status != "" {
		query.Filters = map[string]string{"status": cmd.Status}
	}
	page, err := client.ListOrders(context.Background(), query)
	if err != nil {
		return err
	}
	table := newTable("ID", "CustomerName", "SubcategoryName", "TotalPrice", "VendorName", "Status")
	for _, order := range page.Records {
		vendor := order.VendorName
		if vendor == "" {
			vendor = "-"
		}
		table.row(
			order.ID,
			order.CustomerName,
			order.SubcategoryName,
			console.FormatINR(order.TotalPrice),
			vendor,
			string(order.Status),
		)
	}
	return flushTable(table, page)
}

type ordersAssignCmd struct {
	OrderID  string `arg:"" help:"Booking id."`
	VendorID string `arg:"" help:"Vendor id, usually picked from the availability list."`
}

func (cmd *ordersAssignCmd) Run(client *marketplace.Client) error {
	if err := client.AssignOrder(context.Background(), cmd.OrderID, cmd.VendorID); err != nil {
		return err
	}
	fmt.Printf("assigned %s to %s\n", cmd.OrderID, cmd.VendorID)
	return nil
}

type disputesCmd struct {
	List    disputesListCmd    `cmd:"" default:"withargs" help:"List disputes."`
	Resolve disputesResolveCmd `cmd:"" help:"Move a dispute to a new status."`
}

type disputesListCmd struct {
	listFlags
}

func (cmd *disputesListCmd) Run(client *marketplace.Client) error {
	page, err := client.ListDisputes(context.Background(), cmd.query())
	if err != nil {
		return err
	}
	table := newTable("ID", "CustomerName", "VendorName", "Status", "RefundAmount")
	for _, dispute := range page.Records {
		refund := "-"
		if dispute.RefundAmount != nil {
			refund = console.FormatINR(*dispute.RefundAmount)
		}
		table.row(
			dispute.ID,
			dispute.CustomerName,
			dispute.VendorName,
			string(dispute.Status),
			refund,
		)
	}
	return flushTable(table, page)
}

type disputesResolveCmd struct {
	ID         string   `arg:"" help:"Dispute id."`
	Status     string   `required:"" enum:"open,inProgress,closed,reopen" help:"Target status."`
	Resolution string   `help:"Free-text resolution note."`
	Refund     *float64 `help:"Optional refund amount in rupees."`
}

func (cmd *disputesResolveCmd) Run(client *marketplace.Client) error {
	err := client.UpdateDisputeStatus(context.Background(), cmd.ID,
		console.DisputeStatus(cmd.Status), cmd.Resolution, cmd.Refund)
	if err != nil {
		return err
	}
	fmt.Printf("dispute %s moved to %s\n", cmd.ID, cmd.Status)
	return nil
}

type broadcastCmd struct {
	Title     string   `required:"" help:"Notification title."`
	Body      string   `help:"Notification body."`
	Audience  string   `enum:",all_customers,all_vendors" help:"Broadcast to a whole audience."`
	Recipient []string `help:"Explicit recipient ids (use multiple --recipient flags)."`
}

func (cmd *broadcastCmd) Run(client *marketplace.Client) error {
	err := client.SendBroadcast(context.Background(), console.Broadcast{
		Title:      cmd.Title,
		Body:       cmd.Body,
		Audience:   console.Audience(cmd.Audience),
		Recipients: cmd.Recipient,
	})
	if err != nil {
		return err
	}
	fmt.Println("broadcast queued")
	return nil
}

type dashboardCmd struct {
	Period string `default:"1m" enum:"1m,3m,6m,1y" help:"Reporting window."`
	Out    string `type:"path" default:"overview.html" help:"Output HTML file."`
}

func (cmd *dashboardCmd) Run(client *marketplace.Client) error {
	ctx := context.Background()
	period := console.Period(cmd.Period)
	overview, err := client.FetchOverview(ctx, period)
	if err != nil {
		return err
	}

	charts := console.NewChartRenderer()
	html := "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Overview</title></head><body>"
	html += fmt.Sprintf("<h1>Overview %s</h1>", period)
	html += fmt.Sprintf("<p>Users %d · Partners %d · Bookings %d · Revenue %s</p>",
		overview.Totals.Users, overview.Totals.Partners, overview.Totals.Bookings,
		console.FormatINR(overview.Totals.Revenue))
	if chart, err := charts.TopServicesChart(period, overview.TopServices); err == nil {
		html += chart
	}
	if overview.Performance != nil {
		if chart, err := charts.PerformanceTrend(period, *overview.Performance); err == nil {
			html += chart
		}
	}
	html += "</body></html>"

	if err := os.WriteFile(cmd.Out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("adminctl: write output: %w", err)
	}
	fmt.Printf("wrote %s\n", cmd.Out)
	return nil
}

// table renders aligned columns with SCREAMING_SNAKE headers derived from the
// domain field names.
type table struct {
	writer *tabwriter.Writer
}

func newTable(columns ...string) *table {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, column := range columns {
		if i > 0 {
			fmt.Fprint(writer, "\t")
		}
		fmt.Fprint(writer, strcase.ToSNAKE(column))
	}
	fmt.Fprintln(writer)
	return &table{writer: writer}
}

func (t *table) row(cells ...string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, cell)
	}
	fmt.Fprintln(t.writer)
}

func flushTable[T any](t *table, page console.Page[T]) error {
	if err := t.writer.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d (%d records)\n", page.CurrentPage, page.TotalPages, page.TotalRecords)
	return nil
}
