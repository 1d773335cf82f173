package model

// TicketType là một loại vé trong danh mục, tách theo kênh bán (offline/online).
// Price giữ nguyên dạng chuỗi có định dạng ("100,000 ₫") như bảng giá gốc.
type TicketType struct {
	DTO
	TicketName     string `gorm:"not null;uniqueIndex:idx_ticket_name_channel" validate:"required" json:"ticketName"`
	Slug           string `gorm:"size:100;index" json:"slug"`
	Price          string `gorm:"not null" json:"price"`
	IncludeConcert bool   `gorm:"not null;default:false" json:"includeConcert"`
	ClassRange     []int  `gorm:"serializer:json" json:"classRange"`
	MaxQuantity    int    `gorm:"not null;default:0" json:"maxQuantity"`
	Channel        string `gorm:"size:10;not null;default:'offline';uniqueIndex:idx_ticket_name_channel" json:"channel"`
}

type TicketTypes []TicketType

type CreateTicketTypeInput struct {
	TicketName     string `json:"ticketName" validate:"required"`
	Price          string `json:"price" validate:"required"`
	IncludeConcert bool   `json:"includeConcert"`
	ClassRange     []int  `json:"classRange" validate:"required,min=1"`
	MaxQuantity    int    `json:"maxQuantity" validate:"gte=0"`
	Channel        string `json:"channel" validate:"required,oneof=offline online"`
}

type UpdateTicketTypeInput struct {
	Price          *string `json:"price,omitempty"`
	IncludeConcert *bool   `json:"includeConcert,omitempty"`
	ClassRange     []int   `json:"classRange,omitempty"`
	MaxQuantity    *int    `json:"maxQuantity,omitempty"`
}

// TicketCatalog gom hai danh mục offline/online trả về cho client trong một lần gọi.
type TicketCatalog struct {
	Offline []TicketType `json:"offline"`
	Online  []TicketType `json:"online"`
}

type TicketColorInput struct {
	Color string `json:"color" validate:"required,hexcolor"`
}
