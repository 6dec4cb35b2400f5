package worker

import (
	"github.com/spec-kit/booking-service/internal/service"
)

// StartNotificationWorker subscribes notification handlers to account events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
