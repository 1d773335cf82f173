package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"vteam_ticket/model"
)

// DuplicateStudentError báo học sinh đã có một dòng trong đơn nháp.
// Mỗi học sinh chỉ được một vé.
type DuplicateStudentError struct {
	StudentID string
}

func (e *DuplicateStudentError) Error() string {
	return fmt.Sprintf("học sinh %s đã có vé trong đơn", e.StudentID)
}

var (
	ErrMissingFields      = errors.New("thiếu thông tin bắt buộc")
	ErrIneligibleHomeroom = errors.New("lớp không có loại vé hợp lệ")
	ErrEntryOutOfRange    = errors.New("dòng không tồn tại trong đơn nháp")
)

// OrderDraftStore giữ danh sách dòng đơn đang gom trước khi chốt. Mọi thay đổi
// đều ghi ngay xuống KVStore để tải lại trang không mất đơn.
type OrderDraftStore struct {
	entries []model.OrderEntry
	kv      KVStore
	key     string
}

// NewOrderDraftStore nạp lại đơn nháp từ KVStore nếu có. Dữ liệu hỏng thì ghi
// log rồi bắt đầu với danh sách rỗng, không bao giờ làm sập form.
func NewOrderDraftStore(kv KVStore, key string) *OrderDraftStore {
	s := &OrderDraftStore{kv: kv, key: key, entries: []model.OrderEntry{}}
	raw, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("Lỗi đọc đơn nháp %s: %v", key, err)
		}
		return s
	}
	var entries []model.OrderEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("Đơn nháp %s bị hỏng, bỏ qua: %v", key, err)
		return s
	}
	s.entries = entries
	return s
}

func (s *OrderDraftStore) persist() {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("Lỗi mã hoá đơn nháp %s: %v", s.key, err)
		return
	}
	if err := s.kv.Set(s.key, string(raw)); err != nil {
		log.Printf("Lỗi lưu đơn nháp %s: %v", s.key, err)
	}
}

// Entries trả về bản sao để caller không sửa trực tiếp danh sách bên trong.
func (s *OrderDraftStore) Entries() []model.OrderEntry {
	out := make([]model.OrderEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *OrderDraftStore) Len() int {
	return len(s.entries)
}

// AddEntry kiểm tra dữ liệu rồi thêm một dòng chụp cứng vào đơn nháp.
// Trùng mã học sinh thì trả DuplicateStudentError và giữ nguyên danh sách.
func (s *OrderDraftStore) AddEntry(entry model.OrderEntry, catalog []model.TicketType) error {
	if SafeTrim(entry.StudentIDInput) == "" ||
		SafeTrim(entry.NameInput) == "" ||
		SafeTrim(entry.HomeroomInput) == "" ||
		SafeTrim(entry.Email) == "" {
		return ErrMissingFields
	}
	if len(EligibleTickets(entry.HomeroomInput, catalog)) == 0 {
		return ErrIneligibleHomeroom
	}
	for _, e := range s.entries {
		if e.StudentIDInput == entry.StudentIDInput {
			return &DuplicateStudentError{StudentID: entry.StudentIDInput}
		}
	}
	s.entries = append(s.entries, entry)
	s.persist()
	return nil
}

// EditEntry rút một dòng ra khỏi đơn nháp và trả về giá trị để đổ lại vào form.
// Dòng bị rút ngay cả khi người dùng huỷ việc sửa — UI chặn bằng bước xác nhận
// trước khi gọi, đây là hành vi giữ nguyên từ bản gốc.
func (s *OrderDraftStore) EditEntry(index int) (model.OrderEntry, error) {
	if index < 0 || index >= len(s.entries) {
		return model.OrderEntry{}, ErrEntryOutOfRange
	}
	entry := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.persist()
	return entry, nil
}

func (s *OrderDraftStore) DeleteEntry(index int) error {
	if index < 0 || index >= len(s.entries) {
		return ErrEntryOutOfRange
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.persist()
	return nil
}

func (s *OrderDraftStore) ClearAll() {
	s.entries = []model.OrderEntry{}
	if err := s.kv.Delete(s.key); err != nil {
		log.Printf("Lỗi xoá đơn nháp %s: %v", s.key, err)
	}
}

// Subtotal cộng giá các dòng theo danh mục hiện tại. Loại vé đã bị gỡ khỏi
// danh mục tính 0 đồng.
func (s *OrderDraftStore) Subtotal(catalog []model.TicketType) int {
	total := 0
	for _, e := range s.entries {
		for _, t := range catalog {
			if t.TicketName == e.TicketType {
				total += ParseCurrency(t.Price)
				break
			}
		}
	}
	return total
}
