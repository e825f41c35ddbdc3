package events

// Publisher delivers events to whoever is listening.
// A nil Publisher is valid everywhere one is accepted and drops events.
type Publisher interface {
	Publish(event Event) error
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
