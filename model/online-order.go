package model

import "time"

// OnlineOrder là đơn đặt vé online, chờ duyệt bằng ảnh chứng từ chuyển khoản.
type OnlineOrder struct {
	DTO
	PublicCode      string     `gorm:"unique;size:20" json:"publicCode"` // VTO-XXXXXXXX
	StudentIDInput  string     `gorm:"size:20;not null;index" json:"studentIdInput"`
	NameInput       string     `gorm:"not null" json:"nameInput"`
	HomeroomInput   string     `gorm:"size:10" json:"homeroomInput"`
	Email           string     `gorm:"not null" json:"email"`
	TicketType      string     `gorm:"not null" json:"ticketType"`
	ConcertIncluded bool       `json:"concertIncluded"`
	Amount          int        `json:"amount"`
	ProofImageUrl   string     `json:"proofImageUrl"` // ảnh chứng từ trên Cloudinary
	Status          string     `gorm:"size:10;not null;default:'PENDING';index" json:"status"`
	Note            string     `json:"note"` // ghi chú của người duyệt
	VerifiedBy      *uint      `json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	ExpiresAt       time.Time  `json:"expiresAt"`
}

type OnlineOrders []OnlineOrder

type CreateOnlineOrderInput struct {
	StudentID  string `json:"studentId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Homeroom   string `json:"homeroom" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	TicketType string `json:"ticketType" validate:"required"`
}

type ReviewOnlineOrderInput struct {
	Note string `json:"note"`
}

type FilterOnlineOrder struct {
	Pagination
	Status    string `json:"status" validate:"omitempty,oneof=PENDING VERIFIED REJECTED EXPIRED"`
	SearchKey string `json:"searchKey"`
}
