package helper

import (
	"strings"

	"vteam_ticket/model"
)

// FindBestMatch tìm học sinh khớp nhất với mã đang gõ dở.
// Thứ tự ưu tiên: khớp đúng → khớp tiền tố → khớp chuỗi con, đều không phân
// biệt hoa thường. Cùng một bậc thì lấy theo thứ tự danh bạ, không xếp hạng thêm.
func FindBestMatch(query string, directory []model.StudentRecord) *model.StudentRecord {
	q := strings.ToLower(SafeTrim(query))
	if q == "" || len(directory) == 0 {
		return nil
	}

	for i := range directory {
		if strings.ToLower(directory[i].StudentID) == q {
			return &directory[i]
		}
	}
	for i := range directory {
		if strings.HasPrefix(strings.ToLower(directory[i].StudentID), q) {
			return &directory[i]
		}
	}
	for i := range directory {
		if strings.Contains(strings.ToLower(directory[i].StudentID), q) {
			return &directory[i]
		}
	}
	return nil
}

// IsSubsequence kiểm tra các ký tự của query xuất hiện theo đúng thứ tự trong
// text (không cần liền nhau), không phân biệt hoa thường. Query rỗng luôn khớp.
// Dùng cho ô tìm kiếm loại vé và tìm kiếm đơn hàng.
func IsSubsequence(query, text string) bool {
	q := []rune(strings.ToLower(query))
	if len(q) == 0 {
		return true
	}
	i := 0
	for _, r := range strings.ToLower(text) {
		if r == q[i] {
			i++
			if i == len(q) {
				return true
			}
		}
	}
	return false
}
