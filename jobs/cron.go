package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"brf/services/logger"
)

// Các đơn đã hủy được giữ lại chừng này trước khi bị job dọn dẹp xóa.
const cancelledBookingRetention = 30 * 24 * time.Hour

// BookingPruner định nghĩa interface cho việc dọn đơn đặt phòng cũ.
type BookingPruner interface {
	PruneCancelled(ctx context.Context, olderThan time.Duration) int
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, pruner BookingPruner, log logger.Logger) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		removed := pruner.PruneCancelled(context.Background(), cancelledBookingRetention)
		log.Info("retention job removed %d cancelled bookings", removed)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized")
	return nil
}
