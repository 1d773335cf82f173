package validate

import (
	"vteam_ticket/constants"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

func SubmitOrders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitOrdersInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		for _, entry := range input.Orders {
			if entry.PaymentMedium != "" && !utils.IsValidValueOfConstant(entry.PaymentMedium, constants.PAYMENT_MEDIUMS) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phương thức thanh toán không hợp lệ", nil, "paymentMedium")
			}
		}

		c.Locals("inputSubmitOrders", input)
		return c.Next()
	}
}

func FilterOrders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterOrder

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputFilterOrders", input)
		return c.Next()
	}
}
