package helper

import (
	"encoding/json"
	"errors"
	"testing"

	"vteam_ticket/model"
)

const testDraftKey = "vteam:draft:test"

func validEntry(studentID string) model.OrderEntry {
	return model.OrderEntry{
		NameInput:      "Nguyen Van A",
		StudentIDInput: studentID,
		HomeroomInput:  "12A1",
		TicketType:     "B",
		PaymentMedium:  "Tiền mặt",
		Email:          "a@x.com",
	}
}

func TestAddEntryRejectsDuplicateStudent(t *testing.T) {
	kv := NewMemoryStore()
	draft := NewOrderDraftStore(kv, testDraftKey)
	catalog := testCatalog()

	if err := draft.AddEntry(validEntry("VS001"), catalog); err != nil {
		t.Fatalf("first AddEntry: %v", err)
	}
	err := draft.AddEntry(validEntry("VS001"), catalog)
	var dup *DuplicateStudentError
	if !errors.As(err, &dup) {
		t.Fatalf("second AddEntry = %v, want DuplicateStudentError", err)
	}
	if dup.StudentID != "VS001" {
		t.Errorf("duplicate error names %q, want VS001", dup.StudentID)
	}
	if draft.Len() != 1 {
		t.Errorf("draft length after rejected add = %d, want 1", draft.Len())
	}
}

func TestAddEntryValidation(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name    string
		mutate  func(*model.OrderEntry)
		wantErr error
	}{
		{"blankStudentID", func(e *model.OrderEntry) { e.StudentIDInput = "  " }, ErrMissingFields},
		{"blankName", func(e *model.OrderEntry) { e.NameInput = "" }, ErrMissingFields},
		{"blankHomeroom", func(e *model.OrderEntry) { e.HomeroomInput = "" }, ErrMissingFields},
		{"blankEmail", func(e *model.OrderEntry) { e.Email = "" }, ErrMissingFields},
		{"ineligibleHomeroom", func(e *model.OrderEntry) { e.HomeroomInput = "9X1" }, ErrIneligibleHomeroom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := NewOrderDraftStore(NewMemoryStore(), testDraftKey)
			entry := validEntry("VS001")
			tt.mutate(&entry)
			if err := draft.AddEntry(entry, catalog); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEntry = %v, want %v", err, tt.wantErr)
			}
			if draft.Len() != 0 {
				t.Errorf("draft mutated on rejected add")
			}
		})
	}
}

func TestDraftSurvivesRehydration(t *testing.T) {
	kv := NewMemoryStore()
	catalog := testCatalog()

	draft := NewOrderDraftStore(kv, testDraftKey)
	if err := draft.AddEntry(validEntry("VS001"), catalog); err != nil {
		t.Fatal(err)
	}
	if err := draft.AddEntry(validEntry("VS002"), catalog); err != nil {
		t.Fatal(err)
	}

	reloaded := NewOrderDraftStore(kv, testDraftKey)
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded draft length = %d, want 2", reloaded.Len())
	}
	if reloaded.Entries()[1].StudentIDInput != "VS002" {
		t.Errorf("reloaded entries out of order: %+v", reloaded.Entries())
	}
}

func TestCorruptDraftYieldsEmptyList(t *testing.T) {
	kv := NewMemoryStore()
	if err := kv.Set(testDraftKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	draft := NewOrderDraftStore(kv, testDraftKey)
	if draft.Len() != 0 {
		t.Errorf("corrupt JSON must hydrate to empty draft, got %d entries", draft.Len())
	}
	// Store vẫn dùng được bình thường sau đó
	if err := draft.AddEntry(validEntry("VS001"), testCatalog()); err != nil {
		t.Errorf("AddEntry after corrupt hydration: %v", err)
	}
}

func TestEditEntryRemovesAndReturns(t *testing.T) {
	kv := NewMemoryStore()
	catalog := testCatalog()
	draft := NewOrderDraftStore(kv, testDraftKey)
	draft.AddEntry(validEntry("VS001"), catalog)
	draft.AddEntry(validEntry("VS002"), catalog)

	entry, err := draft.EditEntry(0)
	if err != nil {
		t.Fatal(err)
	}
	if entry.StudentIDInput != "VS001" {
		t.Errorf("EditEntry(0) returned %q", entry.StudentIDInput)
	}
	if draft.Len() != 1 {
		t.Errorf("entry must be removed immediately, len = %d", draft.Len())
	}
	// Dòng đã rút không quay lại kể cả khi caller bỏ ngang — giờ có thể thêm
	// lại cùng mã học sinh.
	if err := draft.AddEntry(validEntry("VS001"), catalog); err != nil {
		t.Errorf("re-add after edit: %v", err)
	}

	if _, err := draft.EditEntry(99); !errors.Is(err, ErrEntryOutOfRange) {
		t.Errorf("EditEntry(99) = %v, want ErrEntryOutOfRange", err)
	}
}

func TestDeleteAndClearAll(t *testing.T) {
	kv := NewMemoryStore()
	catalog := testCatalog()
	draft := NewOrderDraftStore(kv, testDraftKey)
	draft.AddEntry(validEntry("VS001"), catalog)
	draft.AddEntry(validEntry("VS002"), catalog)

	if err := draft.DeleteEntry(0); err != nil {
		t.Fatal(err)
	}
	if draft.Len() != 1 || draft.Entries()[0].StudentIDInput != "VS002" {
		t.Errorf("DeleteEntry(0) left %+v", draft.Entries())
	}

	draft.ClearAll()
	if draft.Len() != 0 {
		t.Errorf("ClearAll left %d entries", draft.Len())
	}
	if _, err := kv.Get(testDraftKey); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("ClearAll must delete the storage key, got err=%v", err)
	}
}

func TestSubtotal(t *testing.T) {
	catalog := testCatalog()
	draft := NewOrderDraftStore(NewMemoryStore(), testDraftKey)
	draft.AddEntry(validEntry("VS001"), catalog) // vé B: 259,000

	entryA := validEntry("VS002")
	entryA.HomeroomInput = "10A1"
	entryA.TicketType = "A" // 100,000
	draft.AddEntry(entryA, catalog)

	if got := draft.Subtotal(catalog); got != 359000 {
		t.Errorf("Subtotal = %d, want 359000", got)
	}

	// Loại vé bị gỡ khỏi danh mục đóng góp 0 đồng
	if got := draft.Subtotal(catalog[:1]); got != 100000 {
		t.Errorf("Subtotal with B removed = %d, want 100000", got)
	}
}

func TestDraftPersistsOnEveryMutation(t *testing.T) {
	kv := NewMemoryStore()
	catalog := testCatalog()
	draft := NewOrderDraftStore(kv, testDraftKey)
	draft.AddEntry(validEntry("VS001"), catalog)

	raw, err := kv.Get(testDraftKey)
	if err != nil {
		t.Fatalf("draft not persisted after AddEntry: %v", err)
	}
	var stored []model.OrderEntry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("persisted draft is not valid JSON: %v", err)
	}
	if len(stored) != 1 || stored[0].StudentIDInput != "VS001" {
		t.Errorf("persisted draft = %+v", stored)
	}
}
