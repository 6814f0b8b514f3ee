// Package integration tests the SQLite store through the ReadingStore
// interface: the Attach → query → Detach lifecycle, JSONL loading, and
// house category seeding.
package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/horasat/internal/sqlite"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

// newTestStore creates a store attached to a temp directory.
func newTestStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := sqlite.NewStore(nil)
	if err := s.Attach(types.Config{Backend: "sqlite", DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	return s, dir
}

func TestAttachDetachLifecycle(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "attach creates data directory and corpus file",
			run: func(t *testing.T) {
				dir := filepath.Join(t.TempDir(), "new-data")
				s := sqlite.NewStore(nil)
				if err := s.Attach(types.Config{Backend: "sqlite", DataDir: dir}); err != nil {
					t.Fatalf("Attach: %v", err)
				}
				defer s.Detach()

				for _, name := range []string{"readings.jsonl", "readings.db"} {
					if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
						t.Errorf("missing file %s: %v", name, err)
					}
				}
			},
		},
		{
			name: "double attach returns ErrAlreadyAttached",
			run: func(t *testing.T) {
				s, _ := newTestStore(t)
				defer s.Detach()
				err := s.Attach(types.Config{Backend: "sqlite", DataDir: t.TempDir()})
				if !errors.Is(err, types.ErrAlreadyAttached) {
					t.Fatalf("expected ErrAlreadyAttached, got %v", err)
				}
			},
		},
		{
			name: "detach is idempotent",
			run: func(t *testing.T) {
				s, _ := newTestStore(t)
				if err := s.Detach(); err != nil {
					t.Fatalf("first Detach: %v", err)
				}
				if err := s.Detach(); err != nil {
					t.Fatalf("second Detach: %v", err)
				}
			},
		},
		{
			name: "queries after detach return ErrStoreDetached",
			run: func(t *testing.T) {
				s, _ := newTestStore(t)
				if err := s.Detach(); err != nil {
					t.Fatalf("Detach: %v", err)
				}
				if _, err := s.GetAll(); !errors.Is(err, types.ErrStoreDetached) {
					t.Errorf("GetAll after detach: got %v, want ErrStoreDetached", err)
				}
				if _, err := s.Categories(); !errors.Is(err, types.ErrStoreDetached) {
					t.Errorf("Categories after detach: got %v, want ErrStoreDetached", err)
				}
			},
		},
		{
			name: "attach rejects unknown backend",
			run: func(t *testing.T) {
				s := sqlite.NewStore(nil)
				err := s.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
				if !errors.Is(err, types.ErrBackendUnknown) {
					t.Fatalf("expected ErrBackendUnknown, got %v", err)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestCorpusLoading(t *testing.T) {
	dir := t.TempDir()
	corpus := `{"reading_id":"r1","heading":"หนึ่ง","body":"a","base":1,"position":1,"value":1,"category":"อัตตะ"}
not json at all
{"reading_id":"r2","heading":"สอง","body":"b","base":2,"position":3,"value":5}
{"body":"no heading, skipped"}
{"heading":"สาม","body":"c"}
`
	if err := os.WriteFile(filepath.Join(dir, "readings.jsonl"), []byte(corpus), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	s := sqlite.NewStore(nil)
	if err := s.Attach(types.Config{Backend: "sqlite", DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer s.Detach()

	all, err := s.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(GetAll()) = %d, want 3 (malformed and heading-less lines skipped)", len(all))
	}

	// The record without an ID gets a generated one.
	for _, r := range all {
		if r.ID == "" {
			t.Errorf("reading %q has empty ID", r.Heading)
		}
	}

	byCategory, err := s.GetByCategory("อัตตะ")
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].ID != "r1" {
		t.Errorf("GetByCategory(อัตตะ) = %+v, want just r1", byCategory)
	}

	byPos, err := s.GetByBaseAndPosition(2, 3)
	if err != nil {
		t.Fatalf("GetByBaseAndPosition: %v", err)
	}
	if len(byPos) != 1 || byPos[0].ID != "r2" {
		t.Errorf("GetByBaseAndPosition(2,3) = %+v, want just r2", byPos)
	}
	if !byPos[0].Value.Valid || byPos[0].Value.Int != 5 {
		t.Errorf("r2 value = %+v, want 5", byPos[0].Value)
	}

	// The unstructured record surfaces with absent attributes.
	unstructured := all[len(all)-1]
	if unstructured.Base.Valid || unstructured.Position.Valid || unstructured.Value.Valid {
		t.Errorf("unstructured record has structured attributes: %+v", unstructured)
	}
}

func TestCategorySeeding(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Detach()

	houses, err := s.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(houses) != 21 {
		t.Fatalf("len(Categories()) = %d, want 21", len(houses))
	}

	seen := map[string]bool{}
	for _, h := range houses {
		if seen[h.Name] {
			t.Errorf("duplicate house label %q", h.Name)
		}
		seen[h.Name] = true
		if h.Base < 1 || h.Base > 3 || h.Position < 1 || h.Position > 7 {
			t.Errorf("house %q has out-of-range coordinates: base %d position %d", h.Name, h.Base, h.Position)
		}
		if h.Meaning == "" || h.HouseType == "" {
			t.Errorf("house %q missing metadata: %+v", h.Name, h)
		}
	}
}

func TestAttachRebuildsDatabaseFromCorpus(t *testing.T) {
	dir := t.TempDir()

	s := sqlite.NewStore(nil)
	if err := s.Attach(types.Config{Backend: "sqlite", DataDir: dir}); err != nil {
		t.Fatalf("first Attach: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}

	// Grow the corpus between attaches; the second attach must see it.
	corpus := `{"reading_id":"r1","heading":"ใหม่","body":"x","base":1,"position":1,"value":1}
`
	if err := os.WriteFile(filepath.Join(dir, "readings.jsonl"), []byte(corpus), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	s2 := sqlite.NewStore(nil)
	if err := s2.Attach(types.Config{Backend: "sqlite", DataDir: dir}); err != nil {
		t.Fatalf("second Attach: %v", err)
	}
	defer s2.Detach()

	all, err := s2.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].ID != "r1" {
		t.Errorf("GetAll() = %+v, want just r1 from the rewritten corpus", all)
	}
}
