package validate

import (
	"errors"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTicketType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTicketTypeInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin, isManager, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		// Giá phải đọc được về số dương
		if helper.ParseCurrency(input.Price) <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giá vé không hợp lệ", nil, "price")
		}

		var count int64
		database.DB.Model(&model.TicketType{}).
			Where("ticket_name = ? AND channel = ?", input.TicketName, input.Channel).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Loại vé đã tồn tại", nil, "ticketName")
		}

		c.Locals("inputCreateTicketType", input)
		return c.Next()
	}
}

func UpdateTicketType(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateTicketTypeInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin, isManager, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		if input.Price != nil && helper.ParseCurrency(*input.Price) <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giá vé không hợp lệ", nil, "price")
		}

		c.Locals("inputUpdateTicketType", input)
		return c.Next()
	}
}

func SetTicketColor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TicketColorInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputTicketColor", input)
		return c.Next()
	}
}
