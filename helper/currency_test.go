package helper

import "testing"

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"formattedString", "259,000 ₫", 259000},
		{"emptyString", "", 0},
		{"whitespaceOnly", "   ", 0},
		{"plainDigits", "100000", 100000},
		{"dotSeparators", "1.500.000 ₫", 1500000},
		{"intPassthrough", 1500000, 1500000},
		{"floatPassthrough", float64(80000), 80000},
		{"garbage", "abc", 0},
		{"nilInput", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCurrency(tt.input); got != tt.want {
				t.Errorf("ParseCurrency(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   string
	}{
		{"zero", 0, "0 ₫"},
		{"small", 999, "999 ₫"},
		{"thousands", 100000, "100,000 ₫"},
		{"millions", 1500000, "1,500,000 ₫"},
		{"boundary", 1000, "1,000 ₫"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Errorf("FormatCurrency(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 999, 1000, 80000, 259000, 1500000, 999999999} {
		formatted := FormatCurrency(x)
		again := FormatCurrency(ParseCurrency(formatted))
		if again != formatted {
			t.Errorf("round trip for %d: %q -> %q", x, formatted, again)
		}
	}
}

func TestExtractLeadingNumber(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"12B3", 12, true},
		{"10A1", 10, true},
		{"ABC", 0, false},
		{"ABC123", 123, true},
		{"", 0, false},
		{"9X1", 9, true},
		{"12", 12, true},
	}
	for _, tt := range tests {
		got, ok := ExtractLeadingNumber(tt.text)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractLeadingNumber(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSafeTrim(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"notString", 42, ""},
		{"whitespace", "  \t ", ""},
		{"padded", "  12A1 ", "12A1"},
		{"plain", "VS001", "VS001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeTrim(tt.input); got != tt.want {
				t.Errorf("SafeTrim(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
