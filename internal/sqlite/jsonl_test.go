package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReadJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jsonl")

	content := `{"heading":"a"}

not json
{"heading":"b"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2 (blank and malformed lines skipped)", len(records))
	}
	for i, rec := range records {
		if !json.Valid(rec) {
			t.Errorf("record %d is not valid JSON: %s", i, rec)
		}
	}
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteJSONLRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jsonl")

	records := []json.RawMessage{
		json.RawMessage(`{"heading":"a"}`),
		json.RawMessage(`{"heading":"b"}`),
	}
	if err := writeJSONL(path, records); err != nil {
		t.Fatalf("writeJSONL: %v", err)
	}

	back, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("len = %d, want 2", len(back))
	}
	for i := range records {
		if string(back[i]) != string(records[i]) {
			t.Errorf("record %d = %s, want %s", i, back[i], records[i])
		}
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}
