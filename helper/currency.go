package helper

import (
	"strconv"
	"strings"
)

const CurrencyGlyph = "₫"

// ParseCurrency đọc chuỗi tiền tệ dạng "259,000 ₫" về số nguyên VNĐ.
// Nhận cả số (trả về nguyên giá trị) vì dữ liệu cũ trong sheet lẫn lộn hai kiểu.
// Chuỗi rỗng hoặc không đọc được trả về 0.
func ParseCurrency(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		s := strings.ReplaceAll(v, CurrencyGlyph, "")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, ".", "")
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// FormatCurrency in số tiền theo kiểu "259,000 ₫". FormatCurrency(0) trả về "0 ₫".
func FormatCurrency(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if negative {
		out = "-" + out
	}
	return out + " " + CurrencyGlyph
}

// ExtractLeadingNumber lấy cụm chữ số liên tục đầu tiên trong chuỗi,
// ví dụ "12B3" → 12, "ABC123" → 123. Không có chữ số thì ok=false.
func ExtractLeadingNumber(text string) (int, bool) {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(text[start:i])
			return n, true
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(text[start:])
		return n, true
	}
	return 0, false
}

// SafeTrim đưa mọi giá trị "chưa điền" (nil, không phải chuỗi, toàn khoảng trắng)
// về chuỗi rỗng. Mọi chỗ kiểm tra "đã điền hay chưa" đều đi qua hàm này.
func SafeTrim(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
