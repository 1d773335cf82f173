package database

import (
	"log"
	"time"

	"vteam_ticket/constants"
	"vteam_ticket/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("vteam2026"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "vteam2026"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN, FullName: "Ban tổ chức VTEAM"},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	// Bảng giá vé mở bán đợt đầu
	ticketTypes := []model.TicketType{
		{TicketName: "Vé thường", Slug: "ve-thuong", Price: "100,000 ₫", IncludeConcert: false, ClassRange: []int{6, 7, 8, 9, 10, 11, 12}, MaxQuantity: 1200, Channel: constants.CHANNEL_OFFLINE},
		{TicketName: "Vé kèm đêm nhạc", Slug: "ve-kem-dem-nhac", Price: "259,000 ₫", IncludeConcert: true, ClassRange: []int{10, 11, 12}, MaxQuantity: 400, Channel: constants.CHANNEL_OFFLINE},
		{TicketName: "Vé khối THCS", Slug: "ve-khoi-thcs", Price: "80,000 ₫", IncludeConcert: false, ClassRange: []int{6, 7, 8, 9}, MaxQuantity: 600, Channel: constants.CHANNEL_OFFLINE},
		{TicketName: "Vé online", Slug: "ve-online", Price: "120,000 ₫", IncludeConcert: false, ClassRange: []int{6, 7, 8, 9, 10, 11, 12}, MaxQuantity: 500, Channel: constants.CHANNEL_ONLINE},
		{TicketName: "Vé online kèm đêm nhạc", Slug: "ve-online-kem-dem-nhac", Price: "279,000 ₫", IncludeConcert: true, ClassRange: []int{10, 11, 12}, MaxQuantity: 200, Channel: constants.CHANNEL_ONLINE},
	}

	for _, tt := range ticketTypes {
		if err := db.Where(model.TicketType{TicketName: tt.TicketName, Channel: tt.Channel}).FirstOrCreate(&tt).Error; err != nil {
			log.Println("failed to seed ticket type:", tt.TicketName, "error:", err)
		}
	}

	log.Printf("Seed xong lúc %s", time.Now().Format("15:04:05 02/01/2006"))
}
