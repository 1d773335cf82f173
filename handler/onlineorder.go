package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const onlineOrderTTL = 48 * time.Hour // chưa duyệt sau 48h thì hết hạn

func loadOnlineCatalog() ([]model.TicketType, error) {
	var catalog []model.TicketType
	err := database.DB.
		Where("channel = ?", constants.CHANNEL_ONLINE).
		Order("id ASC").
		Find(&catalog).Error
	return catalog, err
}

// CreateOnlineOrder nhận đơn đặt vé online kèm ảnh chứng từ chuyển khoản.
// Endpoint công khai, không cần đăng nhập.
func CreateOnlineOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateOnlineOrder").(model.CreateOnlineOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	catalog, err := loadOnlineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	eligible := helper.EligibleTickets(input.Homeroom, catalog)
	amount := 0
	concert := false
	for _, t := range eligible {
		if t.TicketName == input.TicketType {
			amount = helper.ParseCurrency(t.Price)
			concert = t.IncludeConcert
			break
		}
	}
	if amount == 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
			fmt.Sprintf("Loại vé %q không hợp lệ với lớp %s", input.TicketType, input.Homeroom), nil, "ticketType")
	}

	// Mỗi học sinh một vé, tính cả đơn online đang chờ duyệt
	var count int64
	database.DB.Model(&model.OnlineOrder{}).
		Where("student_id_input = ? AND status IN ?", input.StudentID,
			[]string{constants.ONLINE_ORDER_PENDING, constants.ONLINE_ORDER_VERIFIED}).
		Count(&count)
	if count == 0 {
		database.DB.Model(&model.Order{}).
			Where("student_id_input = ? AND cancelled_at IS NULL", input.StudentID).
			Count(&count)
	}
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.STUDENT_ID_EXISTS, nil, "studentId")
	}

	publicCode := "VTO-" + strings.ToUpper(uuid.New().String()[:8])

	proofFile, err := c.FormFile("proof")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu ảnh chứng từ chuyển khoản", err, "proof")
	}
	proofUrl, err := helper.UploadProofImage(c.Context(), proofFile, publicCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không tải được ảnh chứng từ", err)
	}

	order := model.OnlineOrder{
		PublicCode:      publicCode,
		StudentIDInput:  input.StudentID,
		NameInput:       input.Name,
		HomeroomInput:   input.Homeroom,
		Email:           input.Email,
		TicketType:      input.TicketType,
		ConcertIncluded: concert,
		Amount:          amount,
		ProofImageUrl:   proofUrl,
		Status:          constants.ONLINE_ORDER_PENDING,
		ExpiresAt:       time.Now().Add(onlineOrderTTL),
	}
	if err := database.DB.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOnlineOrders phân trang theo từng tab trạng thái (PENDING/VERIFIED/...).
func GetOnlineOrders(c *fiber.Ctx) error {
	filterInput := new(model.FilterOnlineOrder)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.OnlineOrder{})
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			"LOWER(public_code) LIKE ? OR LOWER(student_id_input) LIKE ? OR LOWER(name_input) LIKE ?",
			key, key, key,
		)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders model.OnlineOrders
	condition.Order("created_at ASC").Find(&orders)
	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func reviewableOnlineOrder(c *fiber.Ctx) (*model.OnlineOrder, *model.TokenClaim, error) {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return nil, nil, errors.New("PARSE DATA TO LOCALS FAIL")
	}

	dataInfo, isAdmin, isManager, _, isInspector := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isInspector {
		return nil, nil, errors.New("not inspector")
	}

	var order model.OnlineOrder
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return nil, nil, err
	}
	if order.Status != constants.ONLINE_ORDER_PENDING {
		return nil, nil, fmt.Errorf("đơn %s đã được xử lý (%s)", order.PublicCode, order.Status)
	}
	return &order, &dataInfo, nil
}

// VerifyOnlineOrder duyệt chứng từ hợp lệ: chuyển đơn thành vé chính thức và
// gửi email xác nhận kèm QR.
func VerifyOnlineOrder(c *fiber.Ctx) error {
	input, _ := c.Locals("inputReviewOnlineOrder").(model.ReviewOnlineOrderInput)

	order, reviewer, err := reviewableOnlineOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_EDIT, err)
	}

	now := time.Now()
	order.Status = constants.ONLINE_ORDER_VERIFIED
	order.Note = input.Note
	order.VerifiedBy = &reviewer.AccountId
	order.VerifiedAt = &now
	if err := database.DB.Save(order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	// Ghi thành vé chính thức để vào thống kê chung
	ticket := model.Order{
		PublicCode:      order.PublicCode,
		StudentIDInput:  order.StudentIDInput,
		NameInput:       order.NameInput,
		HomeroomInput:   order.HomeroomInput,
		Email:           order.Email,
		TicketType:      order.TicketType,
		ConcertIncluded: order.ConcertIncluded,
		PaymentMedium:   constants.PAYMENT_TRANSFER,
		Amount:          order.Amount,
		CreatedBy:       reviewer.AccountId,
		PaidAt:          &now,
	}
	if err := database.DB.Create(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishSalesEvent(SalesEvent{
		PublicCode:    ticket.PublicCode,
		TicketType:    ticket.TicketType,
		Homeroom:      ticket.HomeroomInput,
		PaymentMedium: ticket.PaymentMedium,
		Amount:        ticket.Amount,
	})

	utils.SendTicketConfirmationEmail(order.Email, utils.TicketConfirmationData{
		PublicCode:    order.PublicCode,
		StudentName:   order.NameInput,
		Homeroom:      order.HomeroomInput,
		TicketType:    order.TicketType,
		Amount:        helper.FormatCurrency(order.Amount),
		PaymentMedium: constants.PAYMENT_TRANSFER,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// RejectOnlineOrder từ chối chứng từ, gửi email báo kèm ghi chú người duyệt.
func RejectOnlineOrder(c *fiber.Ctx) error {
	input, _ := c.Locals("inputReviewOnlineOrder").(model.ReviewOnlineOrderInput)

	order, reviewer, err := reviewableOnlineOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_EDIT, err)
	}

	now := time.Now()
	order.Status = constants.ONLINE_ORDER_REJECTED
	order.Note = input.Note
	order.VerifiedBy = &reviewer.AccountId
	order.VerifiedAt = &now
	if err := database.DB.Save(order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	utils.SendRejectionEmail(order.Email, order.PublicCode, input.Note)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
