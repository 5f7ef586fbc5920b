package chat

import (
	"strings"
	"testing"
)

func newTestConnection(userID int64, topics ...string) *connection {
	c := &connection{
		userID: userID,
		send:   make(chan []byte, 4),
		topics: make(map[string]bool),
	}
	for _, topic := range topics {
		c.topics[topic] = true
	}
	return c
}

func TestPublishReachesOnlyTopicSubscribers(t *testing.T) {
	h := NewHub()
	subscribed := newTestConnection(1, "conv-a")
	other := newTestConnection(2, "conv-b")
	h.register(subscribed)
	h.register(other)

	h.Publish("conv-a", &Event{Type: EventNewMessage, Topic: "conv-a"})

	select {
	case msg := <-subscribed.send:
		if !strings.Contains(string(msg), EventNewMessage) {
			t.Fatalf("unexpected payload: %s", msg)
		}
	default:
		t.Fatal("subscriber did not receive the event")
	}
	select {
	case msg := <-other.send:
		t.Fatalf("non-subscriber received event: %s", msg)
	default:
	}
}

func TestRegisterClosesSupersededConnection(t *testing.T) {
	h := NewHub()
	first := newTestConnection(9, "conv-1")
	second := newTestConnection(9, "conv-1")

	h.register(first)
	h.register(second)

	// The evicted connection's send channel must be closed so its write
	// pump sends a close frame instead of leaving the client hanging.
	select {
	case _, ok := <-first.send:
		if ok {
			t.Fatal("expected closed channel, got a message")
		}
	default:
		t.Fatal("superseded connection's send channel was not closed")
	}

	// The evicted client's read pump unregisters on its way out; that must
	// not touch the replacement or close second.send again.
	h.unregister(first)

	h.Publish("conv-1", &Event{Type: EventNewMessage, Topic: "conv-1"})
	select {
	case <-second.send:
	default:
		t.Fatal("replacement connection did not receive the event")
	}
}
