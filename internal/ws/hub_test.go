package ws

import (
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"talentmate/internal/domain/notification"

	"github.com/google/uuid"
)

func newTestHub() *Hub {
	h := NewHub(log.New(io.Discard, "", 0))
	go h.Run()
	return h
}

func waitForClientCount(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("ClientCount = %d, want %d", h.ClientCount(), want)
}

func TestHubTargetedDelivery(t *testing.T) {
	hub := newTestHub()
	userA, userB := uuid.New(), uuid.New()
	clientA := NewClient(hub, nil, userA)
	clientB := NewClient(hub, nil, userB)
	hub.Register(clientA)
	hub.Register(clientB)
	waitForClientCount(t, hub, 2)

	n := notification.Notification{ID: uuid.New(), UserID: userA, Type: notification.TypeInterviewResult, Title: "t", Message: "m"}
	hub.Push(userA, n)

	select {
	case payload := <-clientA.send:
		var evt NotificationEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if evt.Type != "notification" {
			t.Errorf("event type = %q", evt.Type)
		}
		if evt.Notification.ID != n.ID {
			t.Errorf("notification id = %s, want %s", evt.Notification.ID, n.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("target client received nothing")
	}

	select {
	case payload := <-clientB.send:
		t.Fatalf("other user's client received %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDropsClientWithFullBuffer(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	client := NewClient(hub, nil, userID)
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	for i := 0; i < cap(client.send); i++ {
		client.send <- []byte("x")
	}

	hub.Push(userID, notification.Notification{ID: uuid.New(), UserID: userID, Type: notification.TypeInterviewResult, Title: "t", Message: "m"})
	waitForClientCount(t, hub, 0)

	// The send channel is closed once the client is dropped.
	for range client.send {
	}
}
