package rss2maildir

import (
	"fmt"
	"sync"
)

type mockDelivery struct {
	mu        sync.Mutex
	messages  map[string][]*Message
	failAfter int // fail once this many messages were delivered, -1 never fails
}

func newMockDelivery() *mockDelivery {
	return &mockDelivery{
		messages:  make(map[string][]*Message),
		failAfter: -1,
	}
}

func (m *mockDelivery) Deliver(dir string, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAfter >= 0 && m.delivered() >= m.failAfter {
		return &DeliveryError{Maildir: dir, Err: fmt.Errorf("mock delivery failed")}
	}

	m.messages[dir] = append(m.messages[dir], msg)

	return nil
}

func (m *mockDelivery) count(dir string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.messages[dir])
}

func (m *mockDelivery) delivered() int {
	n := 0

	for _, msgs := range m.messages {
		n += len(msgs)
	}

	return n
}
