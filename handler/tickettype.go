package handler

import (
	"errors"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetTicketCatalog trả về danh mục vé tách theo kênh. Truyền ?homeroom= để chỉ
// lấy các loại vé hợp lệ với khối của lớp đó.
func GetTicketCatalog(c *fiber.Ctx) error {
	homeroom := c.Query("homeroom")

	db := database.DB
	var all []model.TicketType
	if err := db.Order("id ASC").Find(&all).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	catalog := model.TicketCatalog{Offline: []model.TicketType{}, Online: []model.TicketType{}}
	for _, t := range all {
		switch t.Channel {
		case constants.CHANNEL_ONLINE:
			catalog.Online = append(catalog.Online, t)
		default:
			catalog.Offline = append(catalog.Offline, t)
		}
	}

	if homeroom != "" {
		catalog.Offline = helper.EligibleTickets(homeroom, catalog.Offline)
		catalog.Online = helper.EligibleTickets(homeroom, catalog.Online)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, catalog)
}

func CreateTicketType(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTicketType").(model.CreateTicketTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	newTicketType := new(model.TicketType)
	copier.Copy(&newTicketType, &input)
	newTicketType.Slug = helper.GenerateUniqueTicketSlug(db, input.TicketName)

	if err := db.Create(&newTicketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newTicketType)
}

func UpdateTicketType(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateTicketType").(model.UpdateTicketTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	ticketTypeId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var ticketType model.TicketType
	if err := db.First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if input.Price != nil {
		ticketType.Price = *input.Price
	}
	if input.IncludeConcert != nil {
		ticketType.IncludeConcert = *input.IncludeConcert
	}
	if len(input.ClassRange) > 0 {
		ticketType.ClassRange = input.ClassRange
	}
	if input.MaxQuantity != nil {
		ticketType.MaxQuantity = *input.MaxQuantity
	}

	if err := db.Save(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType)
}

// GetTicketColor đọc màu hiển thị đã lưu cho một loại vé (theo slug).
func GetTicketColor(c *fiber.Ctx) error {
	slug := c.Params("slug")

	color, err := KV.Get(constants.KV_TICKET_COLOR_PREFIX + slug)
	if err != nil {
		if errors.Is(err, helper.ErrKeyNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"color": nil})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"color": color})
}

func SetTicketColor(c *fiber.Ctx) error {
	slug := c.Params("slug")
	input, ok := c.Locals("inputTicketColor").(model.TicketColorInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := KV.Set(constants.KV_TICKET_COLOR_PREFIX+slug, input.Color); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"color": input.Color})
}
