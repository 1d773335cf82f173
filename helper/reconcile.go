package helper

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"vteam_ticket/constants"
	"vteam_ticket/model"
)

// Trạng thái gợi ý autocomplete. Outsider thay cho chuỗi đặc biệt
// "Không phải học sinh trong trường..." của bản cũ.
type SuggestionState int

const (
	SuggestNone     SuggestionState = iota
	SuggestMatch                    // có học sinh khớp trong danh bạ
	SuggestOutsider                 // mã không khớp học sinh nào, nhập tay
)

type FocusField string

const (
	FieldStudentID FocusField = "id"
	FieldName      FocusField = "name"
	FieldHomeroom  FocusField = "homeroom"
	FieldEmail     FocusField = "email"
)

// FormSession là máy trạng thái của form nhập đơn cho một người bán.
// Mọi thay đổi đều lưu xuống KVStore để tải lại trang không mất dữ liệu đang gõ.
type FormSession struct {
	StudentID     string          `json:"studentId"`
	Name          string          `json:"name"`
	Homeroom      string          `json:"homeroom"`
	Email         string          `json:"email"`
	Notice        string          `json:"notice"`
	PaymentMedium string          `json:"paymentMedium"`
	Selection     TicketSelection `json:"selection"`
	LastValid     string          `json:"lastValidTicketType"`

	SuggestState    SuggestionState `json:"suggestState"`
	NameSuggest     string          `json:"nameSuggest"`
	HomeroomSuggest string          `json:"homeroomSuggest"`
	EmailSuggest    string          `json:"emailSuggest"`
	BestMatchID     string          `json:"bestMatchStudentId"`

	HomeroomError bool `json:"homeroomError"`

	kv  KVStore
	key string
}

// NewFormSession nạp lại phiên form từ KVStore, dữ liệu hỏng thì bắt đầu mới.
func NewFormSession(kv KVStore, key string) *FormSession {
	s := &FormSession{kv: kv, key: key, PaymentMedium: constants.PAYMENT_CASH}
	raw, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("Lỗi đọc phiên form %s: %v", key, err)
		}
		return s
	}
	var saved FormSession
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Printf("Phiên form %s bị hỏng, bỏ qua: %v", key, err)
		return s
	}
	saved.kv = kv
	saved.key = key
	if saved.PaymentMedium == "" {
		saved.PaymentMedium = constants.PAYMENT_CASH
	}
	return &saved
}

func (s *FormSession) persist() {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		log.Printf("Lỗi mã hoá phiên form %s: %v", s.key, err)
		return
	}
	if err := s.kv.Set(s.key, string(raw)); err != nil {
		log.Printf("Lỗi lưu phiên form %s: %v", s.key, err)
	}
}

func (s *FormSession) clearForm() {
	s.StudentID = ""
	s.Name = ""
	s.Homeroom = ""
	s.Email = ""
	s.Selection = TicketSelection{State: SelectionEmpty}
	s.HomeroomError = false
	s.SuggestState = SuggestNone
	s.NameSuggest = ""
	s.HomeroomSuggest = ""
	s.EmailSuggest = ""
	s.BestMatchID = ""
}

// SetStudentID chạy lại matcher sau mỗi lần gõ mã học sinh và phát lại bộ gợi ý.
// Mã khớp phải chứa "VS" mới được coi là học sinh trong trường; còn lại chuyển
// sang trạng thái nhập tay. Xoá trắng mã thì xoá cả form, trừ khi đang ở trạng
// thái nhập tay (tránh vòng lặp xoá khi cố tình nhập người ngoài danh bạ).
func (s *FormSession) SetStudentID(value string, directory []model.StudentRecord) {
	s.StudentID = value
	defer s.persist()

	if SafeTrim(value) == "" {
		if s.SuggestState != SuggestOutsider {
			s.clearForm()
		}
		return
	}

	match := FindBestMatch(value, directory)
	if match != nil && strings.Contains(match.StudentID, "VS") {
		s.SuggestState = SuggestMatch
		s.NameSuggest = match.Name
		s.HomeroomSuggest = match.Homeroom
		s.EmailSuggest = match.Email
		s.BestMatchID = match.StudentID
		return
	}
	s.SuggestState = SuggestOutsider
	s.NameSuggest = ""
	s.HomeroomSuggest = ""
	s.EmailSuggest = ""
	s.BestMatchID = ""
}

// CanPromoteAll kiểm tra có gì để đổ từ gợi ý vào form hay không.
func (s *FormSession) CanPromoteAll() bool {
	if s.SuggestState != SuggestMatch || s.BestMatchID == "" {
		return false
	}
	return s.StudentID != s.BestMatchID ||
		s.Name != s.NameSuggest ||
		s.Homeroom != s.HomeroomSuggest ||
		s.Email != s.EmailSuggest
}

// PromoteAll đổ cả bốn giá trị gợi ý vào form trong một bước. Lớp thay đổi kéo
// theo tính lại loại vé.
func (s *FormSession) PromoteAll(catalog []model.TicketType) bool {
	if !s.CanPromoteAll() {
		return false
	}
	s.StudentID = s.BestMatchID
	s.Name = s.NameSuggest
	s.Email = s.EmailSuggest
	s.setHomeroom(s.HomeroomSuggest, catalog)
	s.persist()
	return true
}

func (s *FormSession) suggestionFor(field FocusField) (current string, suggest string, ok bool) {
	switch field {
	case FieldName:
		return s.Name, s.NameSuggest, true
	case FieldHomeroom:
		return s.Homeroom, s.HomeroomSuggest, true
	case FieldEmail:
		return s.Email, s.EmailSuggest, true
	}
	return "", "", false
}

// CanPromoteField như CanPromoteAll nhưng chỉ xét một ô.
func (s *FormSession) CanPromoteField(field FocusField) bool {
	if s.SuggestState != SuggestMatch {
		return false
	}
	current, suggest, ok := s.suggestionFor(field)
	return ok && suggest != "" && current != suggest
}

func (s *FormSession) PromoteField(field FocusField, catalog []model.TicketType) bool {
	if !s.CanPromoteField(field) {
		return false
	}
	_, suggest, _ := s.suggestionFor(field)
	switch field {
	case FieldName:
		s.Name = suggest
	case FieldEmail:
		s.Email = suggest
	case FieldHomeroom:
		s.setHomeroom(suggest, catalog)
	}
	s.persist()
	return true
}

// TabKey xử lý phím Tab. Đứng ở ô mã học sinh và có gợi ý dùng được thì đổ cả
// bộ và chặn Tab mặc định; đứng ở ô khác đang trống thì chỉ điền ô đó.
func (s *FormSession) TabKey(focus FocusField, catalog []model.TicketType) bool {
	if focus == FieldStudentID {
		return s.PromoteAll(catalog)
	}
	current, _, ok := s.suggestionFor(focus)
	if !ok || SafeTrim(current) != "" {
		return false
	}
	return s.PromoteField(focus, catalog)
}

func (s *FormSession) setHomeroom(value string, catalog []model.TicketType) {
	s.Homeroom = value
	s.Selection, s.LastValid = ReconcileSelection(value, catalog, s.Selection, s.LastValid)
	s.HomeroomError = s.Selection.State == SelectionInvalid
}

// SetHomeroom tính lại tập vé hợp lệ và ô chọn loại vé mỗi khi lớp thay đổi.
func (s *FormSession) SetHomeroom(value string, catalog []model.TicketType) {
	s.setHomeroom(value, catalog)
	s.persist()
}

// SetTicketType ghi nhận người bán tự đổi loại vé.
func (s *FormSession) SetTicketType(name string, catalog []model.TicketType) {
	s.Selection, s.LastValid = ApplySelection(s.Homeroom, catalog, name, s.LastValid)
	s.persist()
}

func (s *FormSession) SetName(value string) {
	s.Name = value
	s.persist()
}

func (s *FormSession) SetEmail(value string) {
	s.Email = value
	s.persist()
}

func (s *FormSession) SetNotice(value string) {
	s.Notice = value
	s.persist()
}

func (s *FormSession) SetPaymentMedium(value string) {
	s.PaymentMedium = value
	s.persist()
}

// Entry chụp giá trị form hiện tại thành một dòng đơn.
func (s *FormSession) Entry(catalog []model.TicketType) model.OrderEntry {
	medium := s.PaymentMedium
	if medium == "" {
		medium = constants.PAYMENT_CASH
	}
	entry := model.OrderEntry{
		NameInput:      s.Name,
		StudentIDInput: s.StudentID,
		HomeroomInput:  s.Homeroom,
		Notice:         s.Notice,
		PaymentMedium:  medium,
		Email:          s.Email,
	}
	if s.Selection.State == SelectionSelected {
		entry.TicketType = s.Selection.TicketName
		for _, t := range catalog {
			if t.TicketName == s.Selection.TicketName {
				entry.ConcertIncluded = t.IncludeConcert
				break
			}
		}
	}
	return entry
}

// Submit đẩy giá trị form vào đơn nháp. Thành công thì reset form (xoá cả ghi
// chú lẫn LastValid); thất bại trả lỗi cho tầng view hiển thị, form giữ nguyên.
func (s *FormSession) Submit(draft *OrderDraftStore, catalog []model.TicketType) error {
	if err := draft.AddEntry(s.Entry(catalog), catalog); err != nil {
		return err
	}
	s.clearForm()
	s.Notice = ""
	s.LastValid = ""
	s.PaymentMedium = constants.PAYMENT_CASH
	s.persist()
	return nil
}

// LoadEntry đổ một dòng đơn (vừa rút ra bằng EditEntry) ngược lại vào form.
func (s *FormSession) LoadEntry(entry model.OrderEntry, directory []model.StudentRecord, catalog []model.TicketType) {
	s.SetStudentID(entry.StudentIDInput, directory)
	s.Name = entry.NameInput
	s.Email = entry.Email
	s.Notice = entry.Notice
	s.PaymentMedium = entry.PaymentMedium
	s.setHomeroom(entry.HomeroomInput, catalog)
	if entry.TicketType != "" {
		s.Selection, s.LastValid = ApplySelection(s.Homeroom, catalog, entry.TicketType, s.LastValid)
	}
	s.persist()
}
