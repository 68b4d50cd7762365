package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shaiso/Validata/scan"
)

func testEvent() Event {
	return Event{
		ScanID:       uuid.New(),
		Table:        "orders",
		FailureCount: 2,
		Failures: []scan.TestResult{
			{Test: "missing_count == 0", Column: "email", Values: map[string]any{"missing_count": 3}},
			{Test: "row_count > 0"},
		},
		ScanTime: "2024-06-01T00:00:00Z",
	}
}

func TestSlackNotifier_Notify(t *testing.T) {
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL, "#data-quality")
	if err := notifier.Notify(context.Background(), testEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, _ := payload["text"].(string)
	if !strings.Contains(text, "orders") {
		t.Errorf("message should mention table: %s", text)
	}
	if !strings.Contains(text, "2 test failures") {
		t.Errorf("message should mention failure count: %s", text)
	}
	if !strings.Contains(text, "missing_count == 0") {
		t.Errorf("message should list failures: %s", text)
	}
	if payload["channel"] != "#data-quality" {
		t.Errorf("expected channel override, got %v", payload["channel"])
	}
}

func TestSlackNotifier_NoChannel(t *testing.T) {
	var payload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL, "")
	if err := notifier.Notify(context.Background(), testEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := payload["channel"]; ok {
		t.Error("channel must be omitted when not configured")
	}
}

func TestSlackNotifier_WebhookError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusForbidden)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL, "")
	err := notifier.Notify(context.Background(), testEvent())
	if err == nil {
		t.Error("expected error for non-2xx response")
	}
}
