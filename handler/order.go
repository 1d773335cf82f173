package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitOrders chốt cả đơn nháp trong một transaction: hoặc tất cả các dòng
// được ghi, hoặc không dòng nào — đơn nháp chỉ bị xoá khi thành công.
func SubmitOrders(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSubmitOrders").(model.SubmitOrdersInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	dataInfo, _, _, _, _ := helper.GetInfoAccountFromToken(c)
	if dataInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, errors.New("unauthorized"))
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Kiểm tra trước khi ghi: thiếu thông tin, lớp không có vé, trùng trong
	// lô, trùng với đơn đã chốt.
	seen := map[string]bool{}
	for _, entry := range input.Orders {
		if helper.SafeTrim(entry.StudentIDInput) == "" ||
			helper.SafeTrim(entry.NameInput) == "" ||
			helper.SafeTrim(entry.HomeroomInput) == "" ||
			helper.SafeTrim(entry.Email) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(model.SubmitOrdersResult{
				Success: false,
				Message: constants.MISSING_REQUIRED_FIELDS,
			})
		}
		if len(helper.EligibleTickets(entry.HomeroomInput, catalog)) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(model.SubmitOrdersResult{
				Success: false,
				Message: fmt.Sprintf("%s (%s)", constants.INVALID_HOMEROOM, entry.HomeroomInput),
			})
		}
		if seen[entry.StudentIDInput] {
			return c.Status(fiber.StatusConflict).JSON(model.SubmitOrdersResult{
				Success: false,
				Message: fmt.Sprintf("%s: %s", constants.STUDENT_ID_EXISTS, entry.StudentIDInput),
			})
		}
		seen[entry.StudentIDInput] = true

		var count int64
		database.DB.Model(&model.Order{}).
			Where("student_id_input = ? AND cancelled_at IS NULL", entry.StudentIDInput).
			Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusConflict).JSON(model.SubmitOrdersResult{
				Success: false,
				Message: fmt.Sprintf("%s: %s", constants.STUDENT_ID_EXISTS, entry.StudentIDInput),
			})
		}
	}

	now := time.Now()
	created := make([]model.Order, 0, len(input.Orders))

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range input.Orders {
			amount := 0
			concert := entry.ConcertIncluded
			for _, t := range catalog {
				if t.TicketName == entry.TicketType {
					amount = helper.ParseCurrency(t.Price)
					concert = t.IncludeConcert
					break
				}
			}
			if amount == 0 {
				return fmt.Errorf("loại vé %q không còn trong danh mục", entry.TicketType)
			}

			medium := entry.PaymentMedium
			if medium == "" {
				medium = constants.PAYMENT_CASH
			}

			order := model.Order{
				PublicCode:      "VT-" + strings.ToUpper(uuid.New().String()[:8]),
				StudentIDInput:  entry.StudentIDInput,
				NameInput:       entry.NameInput,
				HomeroomInput:   entry.HomeroomInput,
				Email:           entry.Email,
				Notice:          entry.Notice,
				TicketType:      entry.TicketType,
				ConcertIncluded: concert,
				PaymentMedium:   medium,
				Amount:          amount,
				CreatedBy:       dataInfo.AccountId,
				PaidAt:          &now,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			created = append(created, order)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.SubmitOrdersResult{
			Success: false,
			Message: constants.ORDER_SUBMIT_FAILED,
		})
	}

	// Chốt xong mới xoá đơn nháp và phiên form
	if err := KV.Delete(draftKey(dataInfo.AccountId)); err != nil {
		log.Printf("Lỗi xoá đơn nháp sau khi chốt: %v", err)
	}
	if err := KV.Delete(formKey(dataInfo.AccountId)); err != nil {
		log.Printf("Lỗi xoá phiên form sau khi chốt: %v", err)
	}

	for _, order := range created {
		PublishSalesEvent(SalesEvent{
			PublicCode:    order.PublicCode,
			TicketType:    order.TicketType,
			Homeroom:      order.HomeroomInput,
			PaymentMedium: order.PaymentMedium,
			Amount:        order.Amount,
		})

		if input.ShouldSendEmail && helper.ValidEmail(order.Email) {
			qrBase64 := ""
			qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
			if err != nil {
				log.Printf("Lỗi tạo QR cho vé %s: %v", order.PublicCode, err)
			} else {
				qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
			}
			utils.SendTicketConfirmationEmail(order.Email, utils.TicketConfirmationData{
				PublicCode:    order.PublicCode,
				StudentName:   order.NameInput,
				Homeroom:      order.HomeroomInput,
				TicketType:    order.TicketType,
				Amount:        helper.FormatCurrency(order.Amount),
				PaymentMedium: order.PaymentMedium,
				QRBase64:      qrBase64,
			})
		}
	}

	return c.JSON(model.SubmitOrdersResult{Success: true})
}

func GetOrders(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("inputFilterOrders").(model.FilterOrder)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := database.DB

	condition := db.Model(&model.Order{})
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			"LOWER(public_code) LIKE ? OR LOWER(student_id_input) LIKE ? OR LOWER(name_input) LIKE ?",
			key, key, key,
		)
	}
	if filterInput.TicketType != nil {
		condition = condition.Where("ticket_type = ?", filterInput.TicketType)
	}
	if filterInput.PaymentMedium != nil {
		condition = condition.Where("payment_medium = ?", filterInput.PaymentMedium)
	}
	if filterInput.StartDate != nil {
		condition = condition.Where("created_at >= ?", filterInput.StartDate)
	}
	if filterInput.EndDate != nil {
		condition = condition.Where("created_at <= ?", filterInput.EndDate)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders model.Orders
	condition.Order("created_at DESC").Find(&orders)
	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// SearchOrders lọc theo kiểu gõ tắt trên mã vé, mã học sinh và tên.
func SearchOrders(c *fiber.Ctx) error {
	query := c.Query("q")

	var orders model.Orders
	if err := database.DB.Where("cancelled_at IS NULL").Order("created_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	matched := []model.Order{}
	for _, o := range orders {
		if helper.IsSubsequence(query, o.PublicCode) ||
			helper.IsSubsequence(query, o.StudentIDInput) ||
			helper.IsSubsequence(query, o.NameInput) {
			matched = append(matched, o)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, matched)
}

func CancelOrder(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	_, isAdmin, isManager, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if order.CancelledAt != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vé đã huỷ trước đó", nil)
	}

	now := time.Now()
	order.CancelledAt = &now
	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
