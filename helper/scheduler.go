package helper

import (
	"log"
	"time"

	"vteam_ticket/constants"
	"vteam_ticket/database"
	"vteam_ticket/model"
	"vteam_ticket/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var onlineOrderScheduler *cron.Cron
var summaryScheduler gocron.Scheduler

// StartOnlineOrderScheduler quét đơn online quá hạn mỗi 5 phút.
func StartOnlineOrderScheduler() {
	onlineOrderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := onlineOrderScheduler.AddFunc("*/5 * * * *", expireOnlineOrders)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler đơn online: %v", err)
		return
	}

	onlineOrderScheduler.Start()
	log.Println("Scheduler đơn online đã khởi động (mỗi 5 phút)")
}

func StopOnlineOrderScheduler() {
	if onlineOrderScheduler != nil {
		onlineOrderScheduler.Stop()
	}
}

func expireOnlineOrders() {
	now := time.Now()
	result := database.DB.Model(&model.OnlineOrder{}).
		Where("status = ? AND expires_at < ?", constants.ONLINE_ORDER_PENDING, now).
		Update("status", constants.ONLINE_ORDER_EXPIRED)

	if result.Error != nil {
		log.Printf("Lỗi cập nhật đơn online quá hạn: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã chuyển %d đơn online sang EXPIRED", result.RowsAffected)
	}
}

// StartDailySummaryScheduler gửi báo cáo doanh thu hôm trước cho quản trị
// lúc 00:05 giờ Việt Nam mỗi ngày.
func StartDailySummaryScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	summaryScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(sendDailySummary),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Daily summary scheduler started (00:05 ICT)")
}

func StopDailySummaryScheduler() {
	if summaryScheduler != nil {
		_ = summaryScheduler.Shutdown()
	}
}

func sendDailySummary() {
	db := database.DB
	yesterday := time.Now().AddDate(0, 0, -1)
	dayStart := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var revenue int64
	var count int64
	db.Raw(`
        SELECT COALESCE(SUM(amount), 0)
        FROM orders
        WHERE cancelled_at IS NULL
          AND created_at >= ? AND created_at < ?
    `, dayStart, dayEnd).Scan(&revenue)
	db.Model(&model.Order{}).
		Where("cancelled_at IS NULL AND created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&count)

	var admins []model.Account
	if err := db.Where("role = ? AND email <> ''", constants.ROLE_ADMIN).Find(&admins).Error; err != nil {
		log.Printf("Lỗi tra danh sách quản trị: %v", err)
		return
	}

	for _, admin := range admins {
		utils.SendDailySummaryEmail(admin.Email, utils.DailySummaryData{
			Date:        dayStart.Format("02/01/2006"),
			TicketCount: count,
			Revenue:     FormatCurrency(int(revenue)),
		})
	}
}
