package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"brf/services/logger"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(t.TempDir(), logger.Nop{}),
	}

	for name, st := range stores {
		t.Run(name, func(t *testing.T) {
			type record struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			}

			var missing record
			if st.Read(ctx, "absent", &missing) {
				t.Fatal("Read reported a record for an absent key")
			}

			st.Write(ctx, "rec", record{Name: "alpha", Count: 3})

			var got record
			if !st.Read(ctx, "rec", &got) {
				t.Fatal("Read did not find the written record")
			}
			if got.Name != "alpha" || got.Count != 3 {
				t.Fatalf("Read returned %+v", got)
			}

			st.Delete(ctx, "rec")
			if st.Read(ctx, "rec", &got) {
				t.Fatal("Read found a deleted record")
			}
			// deleting twice must be harmless
			st.Delete(ctx, "rec")
		})
	}
}

func TestFileStoreMalformedRecordIsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	st := NewFileStore(dir, logger.Nop{})

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	fallback := []string{"keep-me"}
	if st.Read(ctx, "broken", &fallback) {
		t.Fatal("Read reported success for malformed content")
	}
	if len(fallback) != 1 || fallback[0] != "keep-me" {
		t.Fatalf("fallback was touched: %v", fallback)
	}
}

func TestFileStoreWriteIsBestEffort(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Make directory creation impossible by occupying the path with a file.
	blocked := filepath.Join(dir, "occupied")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewFileStore(filepath.Join(blocked, "nested"), logger.Nop{})
	st.Write(ctx, "rec", map[string]string{"a": "b"}) // must not panic or error

	var out map[string]string
	if st.Read(ctx, "rec", &out) {
		t.Fatal("Read found a record after a failed write")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	NewFileStore(dir, logger.Nop{}).Write(ctx, "rec", 42)

	var got int
	if !NewFileStore(dir, logger.Nop{}).Read(ctx, "rec", &got) || got != 42 {
		t.Fatalf("record did not survive reopen, got %d", got)
	}
}
