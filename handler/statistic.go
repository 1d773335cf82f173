package handler

import (
	"errors"
	"time"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats trả về số liệu tổng quan cho dashboard quản trị.
func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, isManager, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type Stats struct {
		Students      int64 `json:"students"`
		TicketTypes   int64 `json:"ticketTypes"`
		TotalTickets  int64 `json:"totalTickets"`
		TotalRevenue  int64 `json:"totalRevenue"`
		PendingOnline int64 `json:"pendingOnline"`

		TodayRevenue  int64   `json:"todayRevenue"`
		TodayTickets  int64   `json:"todayTickets"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
		TicketsGrowth float64 `json:"ticketsGrowth"` // %
	}

	var stats Stats
	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	db.Raw(`SELECT COUNT(*) FROM student_records`).Scan(&stats.Students)
	db.Raw(`SELECT COUNT(*) FROM ticket_types`).Scan(&stats.TicketTypes)
	db.Raw(`
        SELECT COUNT(*)
        FROM online_orders
        WHERE status = 'PENDING'
    `).Scan(&stats.PendingOnline)

	db.Raw(`
        SELECT COUNT(*), COALESCE(SUM(amount), 0)
        FROM orders
        WHERE cancelled_at IS NULL
    `).Row().Scan(&stats.TotalTickets, &stats.TotalRevenue)

	// === Hôm nay ===
	db.Raw(`
        SELECT COALESCE(SUM(amount), 0)
        FROM orders
        WHERE cancelled_at IS NULL
          AND created_at >= ?
    `, todayStart).Scan(&stats.TodayRevenue)
	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE cancelled_at IS NULL
          AND created_at >= ?
    `, todayStart).Scan(&stats.TodayTickets)

	// === Hôm qua để tính tăng trưởng ===
	var yesterdayRevenue, yesterdayTickets int64
	db.Raw(`
        SELECT COALESCE(SUM(amount), 0)
        FROM orders
        WHERE cancelled_at IS NULL
          AND created_at >= ? AND created_at < ?
    `, yesterdayStart, todayStart).Scan(&yesterdayRevenue)
	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE cancelled_at IS NULL
          AND created_at >= ? AND created_at < ?
    `, yesterdayStart, todayStart).Scan(&yesterdayTickets)

	stats.RevenueGrowth = utils.CalculateGrowth(float64(stats.TodayRevenue), float64(yesterdayRevenue))
	stats.TicketsGrowth = utils.CalculateGrowth(float64(stats.TodayTickets), float64(yesterdayTickets))

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetSalesBreakdown thống kê vé bán theo loại vé, theo khối lớp và theo
// phương thức thanh toán.
func GetSalesBreakdown(c *fiber.Ctx) error {
	_, isAdmin, isManager, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type BucketRow struct {
		Key     string `json:"key"`
		Tickets int64  `json:"tickets"`
		Revenue int64  `json:"revenue"`
	}

	var byTicketType []BucketRow
	db.Raw(`
        SELECT ticket_type AS key, COUNT(*) AS tickets, COALESCE(SUM(amount), 0) AS revenue
        FROM orders
        WHERE cancelled_at IS NULL
        GROUP BY ticket_type
        ORDER BY revenue DESC
    `).Scan(&byTicketType)

	var byPayment []BucketRow
	db.Raw(`
        SELECT payment_medium AS key, COUNT(*) AS tickets, COALESCE(SUM(amount), 0) AS revenue
        FROM orders
        WHERE cancelled_at IS NULL
        GROUP BY payment_medium
    `).Scan(&byPayment)

	// Theo khối: gom theo lớp rồi rút số khối từ tên lớp ("12B3" → 12)
	var byHomeroom []BucketRow
	db.Raw(`
        SELECT homeroom_input AS key, COUNT(*) AS tickets, COALESCE(SUM(amount), 0) AS revenue
        FROM orders
        WHERE cancelled_at IS NULL
        GROUP BY homeroom_input
    `).Scan(&byHomeroom)

	gradeTickets := map[int]int64{}
	gradeRevenue := map[int]int64{}
	for _, row := range byHomeroom {
		grade, ok := helper.ExtractLeadingNumber(row.Key)
		if !ok {
			grade = 0
		}
		gradeTickets[grade] += row.Tickets
		gradeRevenue[grade] += row.Revenue
	}
	type GradeRow struct {
		Grade   int   `json:"grade"`
		Tickets int64 `json:"tickets"`
		Revenue int64 `json:"revenue"`
	}
	byGrade := []GradeRow{}
	for grade := 0; grade <= 12; grade++ {
		if gradeTickets[grade] == 0 {
			continue
		}
		byGrade = append(byGrade, GradeRow{Grade: grade, Tickets: gradeTickets[grade], Revenue: gradeRevenue[grade]})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"byTicketType":    byTicketType,
		"byPaymentMedium": byPayment,
		"byGrade":         byGrade,
	})
}
