package helper

import (
	"fmt"

	"vteam_ticket/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueTicketSlug tạo slug không trùng cho loại vé, dùng làm key màu
// trong KV store và đường dẫn công khai.
func GenerateUniqueTicketSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.TicketType{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
