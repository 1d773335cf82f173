package handler

import (
	"errors"
	"strings"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// loadDirectory đọc toàn bộ danh bạ theo thứ tự nhập — matcher dựa vào thứ tự này.
func loadDirectory() ([]model.StudentRecord, error) {
	var students []model.StudentRecord
	if err := database.DB.Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func GetStudents(c *fiber.Ctx) error {
	filterInput := new(model.FilterStudent)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.StudentRecord{})
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(student_id) LIKE ? OR LOWER(name) LIKE ?", key, key)
	}
	if filterInput.Homeroom != nil {
		condition = condition.Where("homeroom = ?", filterInput.Homeroom)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var students model.StudentRecords
	condition.Order("id ASC").Find(&students)
	response := &model.ResponseCustom{
		Rows:       students,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// MatchStudent chạy matcher cho mã đang gõ dở và trả về bộ gợi ý autocomplete.
// Mã khớp không chứa "VS" coi như người ngoài trường, client hiện thông báo
// nhập tay thay vì gợi ý.
func MatchStudent(c *fiber.Ctx) error {
	query := c.Query("q")

	directory, err := loadDirectory()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	match := helper.FindBestMatch(query, directory)
	if match == nil || !strings.Contains(match.StudentID, "VS") {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"match":   nil,
			"message": constants.NOT_SCHOOL_STUDENT,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"match": match,
		"suggestions": fiber.Map{
			"bestMatchStudentId":      match.StudentID,
			"studentNameAutoComplete": match.Name,
			"homeroomAutoComplete":    match.Homeroom,
			"emailAutoComplete":       match.Email,
		},
	})
}

// SearchStudents lọc danh bạ theo kiểu gõ tắt (các ký tự xuất hiện đúng thứ tự).
func SearchStudents(c *fiber.Ctx) error {
	query := c.Query("q")

	directory, err := loadDirectory()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	matched := []model.StudentRecord{}
	for _, s := range directory {
		if helper.IsSubsequence(query, s.StudentID) || helper.IsSubsequence(query, s.Name) {
			matched = append(matched, s)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, matched)
}

// DeleteStudents xoá một loạt học sinh khỏi danh bạ (nhập nhầm, chuyển trường).
func DeleteStudents(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	_, isAdmin, isManager, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	result := database.DB.Delete(&model.StudentRecord{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// ImportStudents nạp lại danh bạ từ file của nhà trường, ghi đè theo mã học sinh.
func ImportStudents(c *fiber.Ctx) error {
	input, ok := c.Locals("inputImportStudents").(model.ImportStudentsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	created := 0
	updated := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, in := range input.Students {
			var existing model.StudentRecord
			err := tx.Where("student_id = ?", in.StudentID).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newStudent := new(model.StudentRecord)
				copier.Copy(&newStudent, &in)
				if err := tx.Create(&newStudent).Error; err != nil {
					return err
				}
				created++
				continue
			}
			if err != nil {
				return err
			}
			existing.Name = in.Name
			existing.Homeroom = in.Homeroom
			existing.Email = in.Email
			existing.Gender = in.Gender
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"created": created,
		"updated": updated,
	})
}
