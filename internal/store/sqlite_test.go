package store

import "testing"

func TestSQLiteBackendRoundTrip(t *testing.T) {
	backend, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer backend.Close()

	if _, ok, err := backend.Load("missing"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := backend.Save("work_seconds", "120"); err != nil {
		t.Fatalf("save: %v", err)
	}
	value, ok, err := backend.Load("work_seconds")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if value != "120" {
		t.Fatalf("expected 120, got %q", value)
	}

	if err := backend.Save("work_seconds", "0"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = backend.Load("work_seconds")
	if value != "0" {
		t.Fatalf("expected overwrite to 0, got %q", value)
	}
}

func TestSQLiteHubFanout(t *testing.T) {
	backend, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	hub := NewHub(backend)
	defer hub.Close()

	writer := hub.Conn()
	reader := hub.Conn()

	notified := ""
	reader.Watch(func(key string) { notified = key })

	if err := writer.Set("completion_history", []int{1, 2, 3}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if notified != "completion_history" {
		t.Fatalf("expected fanout through sqlite hub, got %q", notified)
	}

	var got []int
	if !reader.Get("completion_history", &got) {
		t.Fatal("expected value visible to reader")
	}
	if len(got) != 3 {
		t.Fatalf("unexpected value: %v", got)
	}
}
