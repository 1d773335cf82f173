package helper

import (
	"errors"
	"testing"

	"vteam_ticket/constants"
	"vteam_ticket/model"
)

const testFormKey = "vteam:form:test"

func testDirectory() []model.StudentRecord {
	return []model.StudentRecord{
		{StudentID: "VS00123", Name: "Nguyen Van A", Homeroom: "12A1", Email: "a@x.com"},
		{StudentID: "VS00456", Name: "Tran Thi B", Homeroom: "10A2", Email: "b@x.com"},
		{StudentID: "GUEST01", Name: "Khách", Homeroom: "", Email: "g@x.com"},
	}
}

func offlineCatalog() []model.TicketType {
	return []model.TicketType{
		{TicketName: "Vé thường", Price: "100,000 ₫", ClassRange: []int{12}},
	}
}

func TestStudentIDTypingPublishesSuggestions(t *testing.T) {
	session := NewFormSession(NewMemoryStore(), testFormKey)

	session.SetStudentID("VS0012", testDirectory())
	if session.SuggestState != SuggestMatch {
		t.Fatalf("SuggestState = %v, want SuggestMatch", session.SuggestState)
	}
	if session.NameSuggest != "Nguyen Van A" ||
		session.HomeroomSuggest != "12A1" ||
		session.EmailSuggest != "a@x.com" ||
		session.BestMatchID != "VS00123" {
		t.Errorf("suggestions = %q %q %q best=%q", session.NameSuggest, session.HomeroomSuggest, session.EmailSuggest, session.BestMatchID)
	}
}

func TestNonSchoolStudentEntersOutsiderState(t *testing.T) {
	session := NewFormSession(NewMemoryStore(), testFormKey)

	// GUEST01 khớp nhưng không chứa "VS"
	session.SetStudentID("GUEST", testDirectory())
	if session.SuggestState != SuggestOutsider {
		t.Fatalf("SuggestState = %v, want SuggestOutsider", session.SuggestState)
	}
	if session.BestMatchID != "" {
		t.Errorf("BestMatchID phải bị xoá, got %q", session.BestMatchID)
	}
	if session.CanPromoteAll() {
		t.Error("không được promote khi ở trạng thái nhập tay")
	}
}

func TestBlankStudentIDClearsFormExceptOutsider(t *testing.T) {
	directory := testDirectory()
	catalog := offlineCatalog()

	session := NewFormSession(NewMemoryStore(), testFormKey)
	session.SetStudentID("VS0012", directory)
	session.PromoteAll(catalog)
	if session.Name == "" {
		t.Fatal("promote không điền form")
	}

	session.SetStudentID("", directory)
	if session.Name != "" || session.Homeroom != "" || session.Email != "" || session.SuggestState != SuggestNone {
		t.Errorf("xoá mã phải xoá cả form: %+v", session)
	}

	// Ở trạng thái nhập tay thì xoá mã không xoá các ô đã gõ
	session.SetStudentID("GUEST", directory)
	session.SetName("Nguyen Thu Cong")
	session.SetStudentID("", directory)
	if session.Name != "Nguyen Thu Cong" {
		t.Errorf("trạng thái nhập tay không được xoá form, Name = %q", session.Name)
	}
}

func TestPromoteAllGuards(t *testing.T) {
	directory := testDirectory()
	catalog := offlineCatalog()
	session := NewFormSession(NewMemoryStore(), testFormKey)

	if session.PromoteAll(catalog) {
		t.Error("promote khi chưa có gợi ý phải bị chặn")
	}

	session.SetStudentID("VS0012", directory)
	if !session.PromoteAll(catalog) {
		t.Fatal("promote lần đầu phải chạy")
	}
	if session.StudentID != "VS00123" || session.Homeroom != "12A1" {
		t.Errorf("promote điền sai: id=%q homeroom=%q", session.StudentID, session.Homeroom)
	}
	// Các ô đã bằng đúng gợi ý → không còn gì để promote
	if session.PromoteAll(catalog) {
		t.Error("promote lặp lại khi form đã khớp gợi ý phải bị chặn")
	}
}

func TestPromoteSingleField(t *testing.T) {
	directory := testDirectory()
	catalog := offlineCatalog()
	session := NewFormSession(NewMemoryStore(), testFormKey)
	session.SetStudentID("VS0012", directory)

	if !session.PromoteField(FieldHomeroom, catalog) {
		t.Fatal("promote ô lớp phải chạy")
	}
	if session.Homeroom != "12A1" {
		t.Errorf("Homeroom = %q", session.Homeroom)
	}
	if session.Name != "" {
		t.Errorf("promote một ô không được đụng ô khác, Name = %q", session.Name)
	}
	if session.PromoteField(FieldHomeroom, catalog) {
		t.Error("ô đã bằng gợi ý thì không promote nữa")
	}
}

func TestTabKeyShortcut(t *testing.T) {
	directory := testDirectory()
	catalog := offlineCatalog()

	session := NewFormSession(NewMemoryStore(), testFormKey)
	session.SetStudentID("VS0012", directory)

	if !session.TabKey(FieldStudentID, catalog) {
		t.Fatal("Tab ở ô mã với gợi ý dùng được phải đổ cả bộ và chặn Tab mặc định")
	}
	if session.Name != "Nguyen Van A" {
		t.Errorf("Tab promote-all điền sai: %q", session.Name)
	}

	// Tab ở ô khác chỉ điền khi ô đang trống
	session2 := NewFormSession(NewMemoryStore(), "vteam:form:test2")
	session2.SetStudentID("VS0045", directory)
	if !session2.TabKey(FieldName, catalog) {
		t.Fatal("Tab ở ô tên trống phải điền từ gợi ý")
	}
	if session2.Name != "Tran Thi B" {
		t.Errorf("Name = %q", session2.Name)
	}
	session2.SetEmail("tay@x.com")
	if session2.TabKey(FieldEmail, catalog) {
		t.Error("Tab ở ô đã có giá trị không được ghi đè")
	}
}

func TestHomeroomChangeSetsErrorFlag(t *testing.T) {
	catalog := offlineCatalog()
	session := NewFormSession(NewMemoryStore(), testFormKey)

	session.SetHomeroom("12A1", catalog)
	if session.HomeroomError {
		t.Error("lớp 12 hợp lệ mà báo lỗi")
	}
	if session.Selection.TicketName != "Vé thường" {
		t.Errorf("Selection = %+v", session.Selection)
	}

	session.SetHomeroom("9X1", catalog)
	if !session.HomeroomError {
		t.Error("lớp 9 không có vé phải bật cờ lỗi")
	}
	if session.Selection.State != SelectionInvalid {
		t.Errorf("Selection = %+v, want Invalid", session.Selection)
	}

	session.SetHomeroom("", catalog)
	if session.HomeroomError {
		t.Error("lớp trống không phải lỗi")
	}
	if session.Selection.State != SelectionEmpty {
		t.Errorf("Selection = %+v, want Empty", session.Selection)
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	directory := []model.StudentRecord{
		{StudentID: "VS00123", Name: "Nguyen Van A", Homeroom: "12A1", Email: "a@x.com"},
	}
	catalog := offlineCatalog()
	kv := NewMemoryStore()

	session := NewFormSession(kv, testFormKey)
	draft := NewOrderDraftStore(kv, testDraftKey)

	// Gõ "VS0012" → gợi ý đầy đủ → promote-all → submit
	session.SetStudentID("VS0012", directory)
	if !session.PromoteAll(catalog) {
		t.Fatal("promote-all phải chạy")
	}
	if err := session.Submit(draft, catalog); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	entries := draft.Entries()
	if len(entries) != 1 {
		t.Fatalf("draft length = %d, want 1", len(entries))
	}
	got := entries[0]
	if got.PaymentMedium != constants.PAYMENT_CASH {
		t.Errorf("PaymentMedium = %q, want %q", got.PaymentMedium, constants.PAYMENT_CASH)
	}
	if got.TicketType != "Vé thường" {
		t.Errorf("TicketType = %q, want Vé thường", got.TicketType)
	}
	if got.StudentIDInput != "VS00123" || got.NameInput != "Nguyen Van A" || got.Email != "a@x.com" {
		t.Errorf("entry = %+v", got)
	}

	// Submit xong form phải sạch
	if session.StudentID != "" || session.Notice != "" || session.LastValid != "" {
		t.Errorf("form không được reset sau submit: %+v", session)
	}
}

func TestSubmitDuplicateSurfacesStudentID(t *testing.T) {
	directory := testDirectory()
	catalog := offlineCatalog()
	kv := NewMemoryStore()

	draft := NewOrderDraftStore(kv, testDraftKey)

	session := NewFormSession(kv, testFormKey)
	session.SetStudentID("VS00123", directory)
	session.PromoteAll(catalog)
	if err := session.Submit(draft, catalog); err != nil {
		t.Fatal(err)
	}

	session.SetStudentID("VS00123", directory)
	session.PromoteAll(catalog)
	err := session.Submit(draft, catalog)
	var dup *DuplicateStudentError
	if !errors.As(err, &dup) {
		t.Fatalf("Submit trùng = %v, want DuplicateStudentError", err)
	}
	if dup.StudentID != "VS00123" {
		t.Errorf("thông báo phải nêu mã học sinh, got %q", dup.StudentID)
	}
	if draft.Len() != 1 {
		t.Errorf("đơn nháp bị sửa dù submit bị từ chối: len=%d", draft.Len())
	}
}

func TestFormSessionSurvivesReload(t *testing.T) {
	kv := NewMemoryStore()
	catalog := offlineCatalog()

	session := NewFormSession(kv, testFormKey)
	session.SetStudentID("VS0012", testDirectory())
	session.SetHomeroom("12A1", catalog)
	session.SetNotice("thu hộ lớp trưởng")

	reloaded := NewFormSession(kv, testFormKey)
	if reloaded.StudentID != "VS0012" || reloaded.Notice != "thu hộ lớp trưởng" {
		t.Errorf("phiên form không giữ qua reload: %+v", reloaded)
	}
	if reloaded.Selection.TicketName != "Vé thường" || reloaded.LastValid != "Vé thường" {
		t.Errorf("lựa chọn vé không giữ qua reload: %+v", reloaded.Selection)
	}
}

func TestCorruptFormStateStartsFresh(t *testing.T) {
	kv := NewMemoryStore()
	if err := kv.Set(testFormKey, "][oops"); err != nil {
		t.Fatal(err)
	}

	session := NewFormSession(kv, testFormKey)
	if session.StudentID != "" || session.SuggestState != SuggestNone {
		t.Errorf("dữ liệu hỏng phải cho phiên mới: %+v", session)
	}
	if session.PaymentMedium != constants.PAYMENT_CASH {
		t.Errorf("PaymentMedium mặc định = %q", session.PaymentMedium)
	}
}
