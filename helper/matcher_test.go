package helper

import (
	"testing"

	"vteam_ticket/model"
)

func directoryOf(ids ...string) []model.StudentRecord {
	out := make([]model.StudentRecord, len(ids))
	for i, id := range ids {
		out[i] = model.StudentRecord{StudentID: id}
	}
	return out
}

func TestFindBestMatch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		directory []model.StudentRecord
		want      string // StudentID mong đợi, "" nghĩa là nil
	}{
		{"emptyQuery", "", directoryOf("VS001"), ""},
		{"whitespaceQuery", "   ", directoryOf("VS001"), ""},
		{"emptyDirectory", "VS001", nil, ""},
		{"exactWinsOverFuzzy", "VS001", directoryOf("VS0011", "VS001"), "VS001"},
		{"exactCaseInsensitive", "vs001", directoryOf("VS001"), "VS001"},
		{"prefixMatch", "VS00", directoryOf("AVS001", "VS0042"), "VS0042"},
		{"substringMatch", "S00", directoryOf("XYZ", "AVS001"), "AVS001"},
		{"directoryOrderWins", "VS", directoryOf("VS002", "VS001"), "VS002"},
		{"noMatch", "ZZ", directoryOf("VS001", "VS002"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindBestMatch(tt.query, tt.directory)
			if tt.want == "" {
				if got != nil {
					t.Errorf("FindBestMatch(%q) = %v, want nil", tt.query, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("FindBestMatch(%q) = nil, want %q", tt.query, tt.want)
			}
			if got.StudentID != tt.want {
				t.Errorf("FindBestMatch(%q) = %q, want %q", tt.query, got.StudentID, tt.want)
			}
		})
	}
}

func TestFindBestMatchReturnsRecordFields(t *testing.T) {
	directory := []model.StudentRecord{
		{StudentID: "VS00123", Name: "Nguyen Van A", Homeroom: "12A1", Email: "a@x.com"},
	}
	got := FindBestMatch("VS0012", directory)
	if got == nil {
		t.Fatal("expected a prefix match, got nil")
	}
	if got.Name != "Nguyen Van A" || got.Homeroom != "12A1" || got.Email != "a@x.com" {
		t.Errorf("match fields = %+v", got)
	}
}

func TestIsSubsequence(t *testing.T) {
	tests := []struct {
		query string
		text  string
		want  bool
	}{
		{"", "anything", true},
		{"", "", true},
		{"a", "", false},
		{"vt", "Vé thường", true},
		{"vkn", "Vé kèm đêm nhạc", true},
		{"abc", "aXbXc", true},
		{"abc", "acb", false},
		{"VS1", "vs001", true},
	}
	for _, tt := range tests {
		if got := IsSubsequence(tt.query, tt.text); got != tt.want {
			t.Errorf("IsSubsequence(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
		}
	}
}
