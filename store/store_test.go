package store_test

import (
	"context"
	"testing"

	"github.com/schoolware/timetab/dbopen"
	"github.com/schoolware/timetab/schedule"
	"github.com/schoolware/timetab/shield"
	"github.com/schoolware/timetab/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(shield.Schema), dbopen.WithSchema(store.DDL))
	return store.New(db)
}

func TestInsertAndGet(t *testing.T) {
	s := openTestStore(t)

	rec := schedule.Parse("Class: 3B\nMaths 9:30-10:30", nil, nil)
	e := &store.Extraction{
		FileName:      "timetable.pdf",
		FileType:      "pdf",
		DocumentType:  string(rec.DocumentType),
		TotalSessions: rec.Metadata.TotalSessions,
		Record:        rec,
	}
	if err := s.Insert(context.Background(), e); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if e.ID == "" || e.CreatedAt == "" {
		t.Fatalf("Insert did not assign id/createdAt: %+v", e)
	}

	got, err := s.Get(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for stored extraction")
	}
	if got.FileName != "timetable.pdf" || got.DocumentType != "class_timetable" {
		t.Errorf("got %+v", got)
	}
	if got.Record == nil || got.Record.SchoolInfo.Class != "3B" {
		t.Errorf("record round trip lost data: %+v", got.Record)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Get(context.Background(), "ext_missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %+v, want nil", got)
	}
}

func TestListRecent(t *testing.T) {
	s := openTestStore(t)

	for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
		e := &store.Extraction{
			FileName:     name,
			FileType:     "txt",
			DocumentType: "class_timetable",
			Record:       schedule.Parse("", nil, nil),
			// Distinct timestamps keep the ordering deterministic.
			CreatedAt: "2026-01-0" + string(rune('1'+i)) + "T00:00:00Z",
		}
		if err := s.Insert(context.Background(), e); err != nil {
			t.Fatalf("Insert %s: %v", name, err)
		}
	}

	got, err := s.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].FileName != "c.txt" || got[1].FileName != "b.txt" {
		t.Errorf("order = [%s %s], want [c.txt b.txt]", got[0].FileName, got[1].FileName)
	}
	if got[0].Record != nil {
		t.Error("ListRecent should not load records")
	}
}
