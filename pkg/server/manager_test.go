package server

import (
	"testing"
)

func TestSessionManagerRegister(t *testing.T) {
	sm := NewSessionManager(0)

	a := NewDetachedSession()
	b := NewDetachedSession()
	if err := sm.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := sm.Register(b); err != nil {
		t.Fatal(err)
	}
	if sm.Len() != 2 {
		t.Errorf("Len = %d, want 2", sm.Len())
	}

	got, err := sm.Get(a.ID())
	if err != nil {
		t.Fatal(err)
	}
	if got != a {
		t.Error("Get returned wrong session")
	}

	sm.Unregister(a)
	if sm.Len() != 1 {
		t.Errorf("Len = %d after unregister, want 1", sm.Len())
	}
	if _, err := sm.Get(a.ID()); err != ErrSessionNotFound {
		t.Errorf("Get after unregister err = %v, want ErrSessionNotFound", err)
	}

	// Unregistering twice is a no-op.
	sm.Unregister(a)
	stats := sm.Stats()
	if stats.TotalClosed != 1 {
		t.Errorf("TotalClosed = %d, want 1", stats.TotalClosed)
	}
}

func TestSessionManagerCap(t *testing.T) {
	sm := NewSessionManager(2)

	if err := sm.Register(NewDetachedSession()); err != nil {
		t.Fatal(err)
	}
	second := NewDetachedSession()
	if err := sm.Register(second); err != nil {
		t.Fatal(err)
	}
	if err := sm.Register(NewDetachedSession()); err != ErrMaxSessionsReached {
		t.Errorf("err = %v, want ErrMaxSessionsReached", err)
	}

	// Freeing a slot admits the next session.
	sm.Unregister(second)
	if err := sm.Register(NewDetachedSession()); err != nil {
		t.Errorf("register after free: %v", err)
	}
}

func TestSessionManagerStats(t *testing.T) {
	sm := NewSessionManager(0)

	sessions := make([]*Session, 3)
	for i := range sessions {
		sessions[i] = NewDetachedSession()
		if err := sm.Register(sessions[i]); err != nil {
			t.Fatal(err)
		}
	}
	sm.Unregister(sessions[0])

	stats := sm.Stats()
	if stats.Active != 2 {
		t.Errorf("Active = %d, want 2", stats.Active)
	}
	if stats.TotalCreated != 3 {
		t.Errorf("TotalCreated = %d, want 3", stats.TotalCreated)
	}
	if stats.TotalClosed != 1 {
		t.Errorf("TotalClosed = %d, want 1", stats.TotalClosed)
	}
	if stats.Peak != 3 {
		t.Errorf("Peak = %d, want 3", stats.Peak)
	}
}

func TestSessionManagerEach(t *testing.T) {
	sm := NewSessionManager(0)
	for i := 0; i < 3; i++ {
		if err := sm.Register(NewDetachedSession()); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	sm.Each(func(*Session) { count++ })
	if count != 3 {
		t.Errorf("Each visited %d sessions, want 3", count)
	}
}
