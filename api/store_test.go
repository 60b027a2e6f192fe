package api

import (
	"reflect"
	"testing"
	"time"

	"portscope/scanner"
)

func TestTaskSerializeRoundTrip(t *testing.T) {
	completed := time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC)
	task := &ScanTask{
		ID:      "a3f5c62e-1234-4f72-a84a-1c2d3e4f5678",
		Status:  "completed",
		Target:  "example.test",
		Ports:   "1-1024",
		Workers: 100,
		Report: &scanner.Report{
			Target:    "example.test",
			IP:        "192.0.2.10",
			Open:      []scanner.ScanResult{{Port: 22, Banner: "SSH-2.0-OpenSSH_9.6"}},
			OSGuess:   "Unknown OS",
			ScannedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		CreatedAt:   time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC),
		CompletedAt: &completed,
	}

	data, err := serializeTask(task)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	// Redis hands fields back as strings.
	asStrings := make(map[string]string, len(data))
	for k, v := range data {
		s, ok := v.(string)
		if !ok {
			t.Fatalf("field %q serialized as %T, want string", k, v)
		}
		asStrings[k] = s
	}

	got, err := deserializeTask(asStrings)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	if !reflect.DeepEqual(task, got) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, task)
	}
}

func TestTaskSerialize_PendingTaskHasNoReport(t *testing.T) {
	task := &ScanTask{
		ID:        "id",
		Status:    "pending",
		Target:    "example.test",
		Ports:     "1-16",
		CreatedAt: time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC),
	}

	data, err := serializeTask(task)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if data["report"] != "" {
		t.Fatalf("pending task serialized report %q, want empty", data["report"])
	}
	if data["completed_at"] != "" {
		t.Fatalf("pending task serialized completed_at %q, want empty", data["completed_at"])
	}
}
