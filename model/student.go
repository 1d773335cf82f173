package model

// StudentRecord là một dòng trong danh bạ học sinh, đồng bộ từ file của nhà trường.
// Form bán vé chỉ đọc, không sửa.
type StudentRecord struct {
	DTO
	StudentID string `gorm:"uniqueIndex;size:20;not null" validate:"required" json:"studentId"`
	Name      string `gorm:"not null" json:"name"`
	Homeroom  string `gorm:"size:10" json:"homeroom"`
	Email     string `json:"email"`
	Gender    string `gorm:"size:10" json:"gender"`
}

type StudentRecords []StudentRecord

type ImportStudentsInput struct {
	Students []CreateStudentInput `json:"students" validate:"required,min=1,dive"`
}

type CreateStudentInput struct {
	StudentID string `json:"studentId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Homeroom  string `json:"homeroom"`
	Email     string `json:"email" validate:"omitempty,email"`
	Gender    string `json:"gender"`
}

type FilterStudent struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Homeroom  *string `json:"homeroom"`
}
