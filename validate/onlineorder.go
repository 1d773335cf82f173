package validate

import (
	"vteam_ticket/constants"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOnlineOrder nhận form multipart: các trường đơn + ảnh chứng từ "proof".
func CreateOnlineOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := model.CreateOnlineOrderInput{
			StudentID:  c.FormValue("studentId"),
			Name:       c.FormValue("name"),
			Homeroom:   c.FormValue("homeroom"),
			Email:      c.FormValue("email"),
			TicketType: c.FormValue("ticketType"),
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if _, err := c.FormFile("proof"); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu ảnh chứng từ chuyển khoản", err, "proof")
		}

		c.Locals("inputCreateOnlineOrder", input)
		return c.Next()
	}
}

func ReviewOnlineOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReviewOnlineOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputReviewOnlineOrder", input)
		return c.Next()
	}
}
