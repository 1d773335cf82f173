package helper

import (
	"testing"

	"vteam_ticket/model"
)

func testCatalog() []model.TicketType {
	return []model.TicketType{
		{TicketName: "A", Price: "100,000 ₫", ClassRange: []int{10, 11}},
		{TicketName: "B", Price: "259,000 ₫", ClassRange: []int{12}, IncludeConcert: true},
	}
}

func ticketNames(tickets []model.TicketType) []string {
	names := make([]string, len(tickets))
	for i, t := range tickets {
		names[i] = t.TicketName
	}
	return names
}

func TestEligibleTickets(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		homeroom string
		want     []string
	}{
		{"12A3", []string{"B"}},
		{"10A1", []string{"A"}},
		{"11B2", []string{"A"}},
		{"9X1", nil},
		{"ABC", nil}, // không rút được khối → khối 0
		{"", nil},
	}
	for _, tt := range tests {
		got := ticketNames(EligibleTickets(tt.homeroom, catalog))
		if len(got) != len(tt.want) {
			t.Errorf("EligibleTickets(%q) = %v, want %v", tt.homeroom, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("EligibleTickets(%q) = %v, want %v", tt.homeroom, got, tt.want)
				break
			}
		}
	}
}

func TestEligibleTicketsKeepsCatalogOrder(t *testing.T) {
	catalog := []model.TicketType{
		{TicketName: "Hai", ClassRange: []int{12}},
		{TicketName: "Một", ClassRange: []int{12}},
	}
	got := ticketNames(EligibleTickets("12A1", catalog))
	if len(got) != 2 || got[0] != "Hai" || got[1] != "Một" {
		t.Errorf("thứ tự danh mục bị đổi: %v", got)
	}
}

func TestReconcileSelection(t *testing.T) {
	catalog := testCatalog()

	t.Run("restoresRememberedTicketOnToggleBack", func(t *testing.T) {
		sel, lastValid := ReconcileSelection("12A1", catalog, TicketSelection{}, "")
		if sel.State != SelectionSelected || sel.TicketName != "B" || lastValid != "B" {
			t.Fatalf("12A1: sel=%+v lastValid=%q", sel, lastValid)
		}

		sel, lastValid = ReconcileSelection("10A1", catalog, sel, lastValid)
		if sel.TicketName != "A" {
			t.Fatalf("10A1 phải rơi về vé hợp lệ đầu tiên, got %+v", sel)
		}

		sel, lastValid = ReconcileSelection("12A1", catalog, sel, lastValid)
		if sel.State != SelectionSelected || sel.TicketName != "B" {
			t.Errorf("đổi lại 12A1 phải khôi phục B, got %+v (lastValid=%q)", sel, lastValid)
		}
	})

	t.Run("keepsCurrentWhenStillEligible", func(t *testing.T) {
		catalog := []model.TicketType{
			{TicketName: "A", ClassRange: []int{12}},
			{TicketName: "B", ClassRange: []int{12}},
		}
		current := SelectTicketName("B")
		sel, _ := ReconcileSelection("12A1", catalog, current, "")
		if sel.TicketName != "B" {
			t.Errorf("lựa chọn còn hợp lệ phải được giữ nguyên, got %+v", sel)
		}
	})

	t.Run("invalidWhenHomeroomHasNoTickets", func(t *testing.T) {
		sel, lastValid := ReconcileSelection("9X1", catalog, SelectTicketName("B"), "B")
		if sel.State != SelectionInvalid {
			t.Errorf("lớp 9 không có vé phải ra Invalid, got %+v", sel)
		}
		if lastValid != "B" {
			t.Errorf("lastValid phải được giữ qua trạng thái Invalid, got %q", lastValid)
		}
	})

	t.Run("emptyWhenHomeroomBlank", func(t *testing.T) {
		sel, _ := ReconcileSelection("", catalog, SelectTicketName("B"), "B")
		if sel.State != SelectionEmpty {
			t.Errorf("lớp trống phải ra Empty, got %+v", sel)
		}
	})
}

func TestApplySelection(t *testing.T) {
	catalog := testCatalog()

	sel, lastValid := ApplySelection("12A1", catalog, "B", "")
	if sel.TicketName != "B" || lastValid != "B" {
		t.Errorf("chọn vé hợp lệ phải cập nhật lastValid: sel=%+v lastValid=%q", sel, lastValid)
	}

	sel, lastValid = ApplySelection("10A1", catalog, "B", "A")
	if sel.TicketName != "B" {
		t.Errorf("lựa chọn tay vẫn được ghi nhận, got %+v", sel)
	}
	if lastValid != "A" {
		t.Errorf("vé ngoài tập hợp lệ không được ghi đè lastValid, got %q", lastValid)
	}
}
