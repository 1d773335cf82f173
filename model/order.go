package model

import "time"

// Order là một vé đã chốt. Mỗi học sinh một vé — ràng buộc theo StudentIDInput.
// Các trường học sinh là bản chụp tại thời điểm chốt, không tham chiếu danh bạ.
type Order struct {
	DTO
	PublicCode      string     `gorm:"unique;size:20" json:"publicCode"` // VT-XXXXXXXX
	StudentIDInput  string     `gorm:"size:20;not null;index" json:"studentIdInput"`
	NameInput       string     `gorm:"not null" json:"nameInput"`
	HomeroomInput   string     `gorm:"size:10" json:"homeroomInput"`
	Email           string     `json:"email"`
	Notice          string     `json:"notice"`
	TicketType      string     `gorm:"not null" json:"ticketType"`
	ConcertIncluded bool       `json:"concertIncluded"`
	PaymentMedium   string     `gorm:"not null" json:"paymentMedium"` // Tiền mặt | Chuyển khoản
	Amount          int        `json:"amount"`                        // giá tại thời điểm chốt (VNĐ)
	CreatedBy       uint       `json:"createdBy"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
}

type Orders []Order

// OrderEntry là một dòng trong đơn nháp phía người bán, chưa ghi vào database.
type OrderEntry struct {
	NameInput       string `json:"nameInput"`
	StudentIDInput  string `json:"studentIdInput"`
	HomeroomInput   string `json:"homeroomInput"`
	Notice          string `json:"notice"`
	TicketType      string `json:"ticketType"`
	ConcertIncluded bool   `json:"concertIncluded"`
	PaymentMedium   string `json:"paymentMedium"`
	Email           string `json:"email"`
}

type SubmitOrdersInput struct {
	Orders          []OrderEntry `json:"orders" validate:"required,min=1,dive"`
	ShouldSendEmail bool         `json:"shouldSendEmail"`
}

type SubmitOrdersResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type FilterOrder struct {
	Pagination
	SearchKey     string     `json:"searchKey"`
	TicketType    *string    `json:"ticketType"`
	PaymentMedium *string    `json:"paymentMedium"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}
