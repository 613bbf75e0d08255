package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	console "github.com/goliatone/go-marketplace-admin/components/console"
	"github.com/goliatone/go-marketplace-admin/components/console/commands"
)

// Executor is the mutation surface transports call into. It hides the
// individual command types behind a single interface.
type Executor interface {
	Assign(ctx context.Context, input commands.AssignOrderInput) error
	Toggle(ctx context.Context, input commands.ToggleStatusInput) error
	Approve(ctx context.Context, input commands.ApproveVendorInput) error
	ResolveDispute(ctx context.Context, input commands.ResolveDisputeInput) error
	Broadcast(ctx context.Context, b console.Broadcast) error
}

// CommandExecutor implements Executor over go-command commanders.
type CommandExecutor struct {
	AssignCommander    gocommand.Commander[commands.AssignOrderInput]
	ToggleCommander    gocommand.Commander[commands.ToggleStatusInput]
	ApproveCommander   gocommand.Commander[commands.ApproveVendorInput]
	DisputeCommander   gocommand.Commander[commands.ResolveDisputeInput]
	BroadcastCommander gocommand.Commander[console.Broadcast]
}

var _ Executor = (*CommandExecutor)(nil)

// Assign executes the order assignment command.
func (e *CommandExecutor) Assign(ctx context.Context, input commands.AssignOrderInput) error {
	if e.AssignCommander == nil {
		return errors.New("httpapi: assign commander not configured")
	}
	return e.AssignCommander.Execute(ctx, input)
}

// Toggle executes the status toggle command.
func (e *CommandExecutor) Toggle(ctx context.Context, input commands.ToggleStatusInput) error {
	if e.ToggleCommander == nil {
		return errors.New("httpapi: toggle commander not configured")
	}
	return e.ToggleCommander.Execute(ctx, input)
}

// Approve executes the vendor approval command.
func (e *CommandExecutor) Approve(ctx context.Context, input commands.ApproveVendorInput) error {
	if e.ApproveCommander == nil {
		return errors.New("httpapi: approve commander not configured")
	}
	return e.ApproveCommander.Execute(ctx, input)
}

// ResolveDispute executes the dispute status command.
func (e *CommandExecutor) ResolveDispute(ctx context.Context, input commands.ResolveDisputeInput) error {
	if e.DisputeCommander == nil {
		return errors.New("httpapi: dispute commander not configured")
	}
	return e.DisputeCommander.Execute(ctx, input)
}

// Broadcast executes the notification command.
func (e *CommandExecutor) Broadcast(ctx context.Context, b console.Broadcast) error {
	if e.BroadcastCommander == nil {
		return errors.New("httpapi: broadcast commander not configured")
	}
	return e.BroadcastCommander.Execute(ctx, b)
}

// Handlers exposes plain net/http endpoints backed by shared commands, for
// hosts that do not mount go-router.
type Handlers struct {
	API Executor
}

func (h *Handlers) HandleAssignOrder(w http.ResponseWriter, r *http.Request) {
	var payload commands.AssignOrderInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Assign(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	var payload commands.ToggleStatusInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Toggle(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleApproveVendor(w http.ResponseWriter, r *http.Request, vendorID string) {
	var payload struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input := commands.ApproveVendorInput{VendorID: vendorID, Approved: payload.Approved}
	if err := h.API.Approve(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleResolveDispute(w http.ResponseWriter, r *http.Request, disputeID string) {
	var payload struct {
		Status     string   `json:"status"`
		Resolution string   `json:"resolution"`
		Refund     *float64 `json:"refund,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input := commands.ResolveDisputeInput{
		DisputeID:  disputeID,
		Status:     console.DisputeStatus(payload.Status),
		Resolution: payload.Resolution,
		Refund:     payload.Refund,
	}
	if err := h.API.ResolveDispute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	var payload console.Broadcast
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Broadcast(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
