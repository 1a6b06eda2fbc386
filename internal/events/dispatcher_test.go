package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventJobCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventJobCreated, SubjectID: "job-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered, SubjectID: "user-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(received) != 1 || received[0].SubjectID != "job-1" {
		t.Fatalf("received = %+v, want only the job_created event", received)
	}
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventJobCreated, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	called := false
	dispatcher.Subscribe(EventJobCreated, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventJobCreated}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !called {
		t.Fatal("second handler must run despite the first failing")
	}
}
