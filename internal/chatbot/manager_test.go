package chatbot

import (
	"context"
	"testing"
)

func TestManagerSessionPerKey(t *testing.T) {
	m := NewManager(testCatalog(t), NewGateway(&fakeLLM{resp: reply("0")}, &fakeLLM{resp: reply("ok")}))

	a := m.Session(1)
	b := m.Session(2)
	if a == b {
		t.Fatalf("different keys share a session")
	}
	if m.Session(1) != a {
		t.Fatalf("same key returned a new session")
	}
}

func TestManagerConversationIsolation(t *testing.T) {
	m := NewManager(testCatalog(t), NewGateway(&fakeLLM{resp: reply("0")}, &fakeLLM{resp: reply("ok")}))

	m.Session(1).ProcessQuery(context.Background(), "consulta de uno")

	if got := len(m.Session(2).History(10)); got != 0 {
		t.Fatalf("turns leaked across sessions: %d", got)
	}
	if got := len(m.Session(1).History(10)); got != 2 {
		t.Fatalf("unexpected turn count for session 1: %d", got)
	}
}

func TestManagerReset(t *testing.T) {
	m := NewManager(testCatalog(t), NewGateway(&fakeLLM{resp: reply("0")}, &fakeLLM{resp: reply("ok")}))

	m.Session(7).ProcessQuery(context.Background(), "consulta")
	m.Reset(7)
	if got := len(m.Session(7).History(10)); got != 0 {
		t.Fatalf("reset did not clear conversation: %d turns", got)
	}

	// Resetting an unknown key must not create a session.
	m.Reset(99)
	m.mu.RLock()
	_, exists := m.sessions[99]
	m.mu.RUnlock()
	if exists {
		t.Fatalf("reset created a session for unknown key")
	}
}
