// Package bus is the in-process pub/sub fabric used on the host side to fan
// device lines out to consumers. Topics are slash-separated strings with
// MQTT-style wildcards: "+" matches one level, "#" matches the rest.
package bus

import (
	"strings"
	"sync"
)

type Message struct {
	Topic    string
	Payload  any
	Retained bool
}

type Subscription struct {
	pattern string
	levels  []string
	ch      chan *Message
	conn    *Connection
}

func (s *Subscription) Pattern() string          { return s.pattern }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// Bus holds the subscriber list and the retained-message store. Subscriber
// counts here are small (a handful of host consumers), so matching is a
// linear scan rather than a trie.
type Bus struct {
	mu       sync.RWMutex
	subs     []*Subscription
	retained map[string]*Message
	qLen     int
}

func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{
		retained: make(map[string]*Message),
		qLen:     queueLen,
	}
}

// Publish delivers msg to every matching subscriber. Delivery never blocks:
// a full subscriber queue drops its oldest message to make room. Retained
// messages are stored per exact topic and replayed to future subscribers; a
// retained publish with a nil payload clears the slot.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	levels := strings.Split(msg.Topic, "/")
	for _, sub := range b.subs {
		if match(sub.levels, levels) {
			deliver(sub.ch, msg)
		}
	}

	if msg.Retained {
		if msg.Payload == nil {
			delete(b.retained, msg.Topic)
		} else {
			b.retained[msg.Topic] = msg
		}
	}
}

func deliver(ch chan *Message, msg *Message) {
	select {
	case ch <- msg:
	default:
		// drop oldest if queue full
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- msg:
		default:
		}
	}
}

// match reports whether the pattern levels accept the topic levels.
// "#" requires at least one topic level in its place: "device/#" matches
// "device/event" but not the bare "device".
func match(pattern, topic []string) bool {
	for i, p := range pattern {
		if p == "#" {
			return i < len(topic)
		}
		if i >= len(topic) {
			return false
		}
		if p != "+" && p != topic[i] {
			return false
		}
	}
	return len(pattern) == len(topic)
}

func (b *Bus) addSubscription(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, sub)

	for topic, msg := range b.retained {
		if match(sub.levels, strings.Split(topic, "/")) {
			deliver(sub.ch, msg)
		}
	}
}

func (b *Bus) removeSubscription(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Connection groups subscriptions so a consumer can tear them all down at
// once when it goes away.
type Connection struct {
	bus  *Bus
	mu   sync.Mutex
	subs []*Subscription
	id   string
}

func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) Publish(msg *Message) {
	c.bus.Publish(msg)
}

func (c *Connection) Subscribe(pattern string) *Subscription {
	sub := &Subscription{
		pattern: pattern,
		levels:  strings.Split(pattern, "/"),
		ch:      make(chan *Message, c.bus.qLen),
		conn:    c,
	}
	c.bus.addSubscription(sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.removeSubscription(sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.removeSubscription(sub)
		close(sub.ch)
	}
}
