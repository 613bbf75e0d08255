package console

import (
	"context"
	"testing"
	"time"
)

func TestBroadcastHookFansOut(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()

	err := hook.EntityChanged(context.Background(), EntityEvent{Entity: "vendor", ID: "v1", Reason: "toggle"})
	if err != nil {
		t.Fatalf("EntityChanged returned error: %v", err)
	}

	select {
	case event := <-events:
		if event.Entity != "vendor" || event.Reason != "toggle" {
			t.Fatalf("unexpected event %#v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBroadcastHookDropsWhenSubscriberFull(t *testing.T) {
	hook := NewBroadcastHook()
	_, cancel := hook.Subscribe()
	defer cancel()

	// More events than the subscriber buffer; none of these may block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			_ = hook.EntityChanged(context.Background(), EntityEvent{Entity: "order", Reason: "assign"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("slow subscriber blocked the mutation path")
	}
}

func TestBroadcastHookCancelClosesChannel(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	cancel()

	if _, ok := <-events; ok {
		t.Fatal("expected closed channel after cancel")
	}
	// Double cancel is safe.
	cancel()
	if err := hook.EntityChanged(context.Background(), EntityEvent{Entity: "banner"}); err != nil {
		t.Fatalf("EntityChanged after cancel returned error: %v", err)
	}
}
