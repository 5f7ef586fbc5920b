package chat

// Event is a real-time event relayed to conversation subscribers.
type Event struct {
	Type    string      `json:"type"`
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventNewMessage = "new_message"
	EventTyping     = "typing"
)

// Bus is the relay surface the chat service depends on. The websocket Hub
// implements it in-process; the service neither knows nor cares how events
// reach subscribers.
type Bus interface {
	Publish(topic string, event *Event)
}
