package handler

import (
	"errors"
	"fmt"
	"strconv"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

// Đơn nháp và phiên form sống trong KV store theo từng người bán, nhờ vậy
// tải lại trang hay đổi máy vẫn giữ nguyên đơn đang gom.

func draftKey(accountId uint) string {
	return constants.KV_ORDER_DRAFT_PREFIX + strconv.FormatUint(uint64(accountId), 10)
}

func formKey(accountId uint) string {
	return constants.KV_FORM_STATE_PREFIX + strconv.FormatUint(uint64(accountId), 10)
}

func loadOfflineCatalog() ([]model.TicketType, error) {
	var catalog []model.TicketType
	err := database.DB.
		Where("channel = ?", constants.CHANNEL_OFFLINE).
		Order("id ASC").
		Find(&catalog).Error
	return catalog, err
}

func sessionAndDraft(c *fiber.Ctx) (*helper.FormSession, *helper.OrderDraftStore, uint, error) {
	dataInfo, _, _, _, _ := helper.GetInfoAccountFromToken(c)
	if dataInfo.AccountId == 0 {
		return nil, nil, 0, errors.New("unauthorized")
	}
	session := helper.NewFormSession(KV, formKey(dataInfo.AccountId))
	draft := helper.NewOrderDraftStore(KV, draftKey(dataInfo.AccountId))
	return session, draft, dataInfo.AccountId, nil
}

// GetDraft trả về đơn nháp, tạm tính và trạng thái form của người bán hiện tại.
func GetDraft(c *fiber.Ctx) error {
	session, draft, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"entries":  draft.Entries(),
		"subtotal": helper.FormatCurrency(draft.Subtotal(catalog)),
		"form":     session,
	})
}

// UpdateFormField nhận một lần gõ phím và chạy lại logic đồng bộ tương ứng.
func UpdateFormField(c *fiber.Ctx) error {
	type FieldInput struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	var input FieldInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	session, _, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	switch input.Field {
	case "studentId":
		directory, err := loadDirectory()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		session.SetStudentID(input.Value, directory)
	case "name":
		session.SetName(input.Value)
	case "homeroom":
		session.SetHomeroom(input.Value, catalog)
	case "email":
		session.SetEmail(input.Value)
	case "notice":
		session.SetNotice(input.Value)
	case "ticketType":
		session.SetTicketType(input.Value, catalog)
	case "paymentMedium":
		if !utils.IsValidValueOfConstant(input.Value, constants.PAYMENT_MEDIUMS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phương thức thanh toán không hợp lệ", nil, "paymentMedium")
		}
		session.SetPaymentMedium(input.Value)
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fmt.Errorf("unknown field %q", input.Field))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

// PromoteSuggestion đổ gợi ý autocomplete vào form: không truyền field thì đổ
// cả bộ, truyền field thì chỉ đổ ô đó.
func PromoteSuggestion(c *fiber.Ctx) error {
	type PromoteInput struct {
		Field string `json:"field"`
	}
	var input PromoteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	session, _, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	promoted := false
	if input.Field == "" {
		promoted = session.PromoteAll(catalog)
	} else {
		promoted = session.PromoteField(helper.FocusField(input.Field), catalog)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"promoted": promoted,
		"form":     session,
	})
}

// TabShortcut xử lý phím Tab: trả về suppressed=true nếu đã dùng Tab để đổ gợi ý.
func TabShortcut(c *fiber.Ctx) error {
	type TabInput struct {
		Focus string `json:"focus"`
	}
	var input TabInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	session, _, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	suppressed := session.TabKey(helper.FocusField(input.Focus), catalog)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"suppressed": suppressed,
		"form":       session,
	})
}

// SubmitForm đẩy giá trị form vào đơn nháp. Trùng học sinh thì trả 409 kèm mã.
func SubmitForm(c *fiber.Ctx) error {
	session, draft, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := session.Submit(draft, catalog); err != nil {
		var dup *helper.DuplicateStudentError
		if errors.As(err, &dup) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.STUDENT_ID_EXISTS, err, "studentId")
		}
		if errors.Is(err, helper.ErrMissingFields) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}
		if errors.Is(err, helper.ErrIneligibleHomeroom) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_HOMEROOM, err, "homeroom")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"entries": draft.Entries(),
		"form":    session,
	})
}

// EditDraftEntry rút một dòng khỏi đơn nháp và đổ ngược vào form để sửa.
// Client phải hỏi xác nhận trước khi gọi — dòng bị rút ngay tại đây.
func EditDraftEntry(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	session, draft, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	entry, err := draft.EditEntry(index)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	catalog, err := loadOfflineCatalog()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	directory, err := loadDirectory()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	session.LoadEntry(entry, directory, catalog)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"entries": draft.Entries(),
		"form":    session,
	})
}

func DeleteDraftEntry(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	_, draft, _, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	if err := draft.DeleteEntry(index); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"entries": draft.Entries()})
}

// ClearDraft xoá cả đơn nháp lẫn phiên form.
func ClearDraft(c *fiber.Ctx) error {
	_, draft, accountId, err := sessionAndDraft(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_PERMISSION, err)
	}

	draft.ClearAll()
	if err := KV.Delete(formKey(accountId)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"entries": draft.Entries()})
}
