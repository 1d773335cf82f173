package helper

import "vteam_ticket/model"

// Trạng thái ô chọn loại vé. Dùng kiểu có tag thay cho chuỗi đặc biệt
// ("Lớp không hợp lệ!") để không đụng với tên vé thật trong danh mục.
type SelectionState int

const (
	SelectionEmpty SelectionState = iota // chưa chọn, lớp đang để trống
	SelectionInvalid                     // lớp đã nhập nhưng không có vé nào hợp lệ
	SelectionSelected
)

type TicketSelection struct {
	State      SelectionState `json:"state"`
	TicketName string         `json:"ticketName,omitempty"`
}

func SelectTicketName(name string) TicketSelection {
	return TicketSelection{State: SelectionSelected, TicketName: name}
}

// EligibleTickets lọc danh mục theo khối lớp suy ra từ chuỗi lớp ("12B3" → 12).
// Không suy ra được khối thì coi như khối 0. Giữ nguyên thứ tự danh mục.
func EligibleTickets(homeroom string, catalog []model.TicketType) []model.TicketType {
	grade, ok := ExtractLeadingNumber(homeroom)
	if !ok {
		grade = 0
	}
	eligible := []model.TicketType{}
	for _, t := range catalog {
		for _, g := range t.ClassRange {
			if g == grade {
				eligible = append(eligible, t)
				break
			}
		}
	}
	return eligible
}

func containsTicket(tickets []model.TicketType, name string) bool {
	for _, t := range tickets {
		if t.TicketName == name {
			return true
		}
	}
	return false
}

// ReconcileSelection tính lại ô chọn loại vé khi lớp hoặc danh mục thay đổi.
// lastValid là loại vé hợp lệ gần nhất, dùng để khôi phục lựa chọn khi người
// bán gõ nhầm lớp rồi sửa lại. Trả về lựa chọn mới và lastValid mới.
func ReconcileSelection(homeroom string, catalog []model.TicketType, current TicketSelection, lastValid string) (TicketSelection, string) {
	eligible := EligibleTickets(homeroom, catalog)

	if len(eligible) == 0 {
		if SafeTrim(homeroom) != "" {
			return TicketSelection{State: SelectionInvalid}, lastValid
		}
		return TicketSelection{State: SelectionEmpty}, lastValid
	}

	if lastValid != "" && containsTicket(eligible, lastValid) {
		return SelectTicketName(lastValid), lastValid
	}
	if current.State == SelectionSelected && containsTicket(eligible, current.TicketName) {
		return current, lastValid
	}
	first := eligible[0].TicketName
	return SelectTicketName(first), first
}

// ApplySelection ghi nhận lựa chọn do người bán tự đổi. Chỉ khi vé nằm trong
// tập hợp lệ mới cập nhật lastValid — nhờ vậy đổi lớp qua lại vẫn quay về
// đúng vé đã chọn thay vì luôn nhảy về vé đầu danh mục.
func ApplySelection(homeroom string, catalog []model.TicketType, name string, lastValid string) (TicketSelection, string) {
	sel := SelectTicketName(name)
	if containsTicket(EligibleTickets(homeroom, catalog), name) {
		return sel, name
	}
	return sel, lastValid
}
