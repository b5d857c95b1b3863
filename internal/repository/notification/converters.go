package notification

import (
	"marketplace/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		OrderID:     n.OrderID,
		OrderStatus: entities.OrderStatusType(n.OrderStatus),
		Message:     n.Message,
		CreatedAt:   n.CreatedAt,
	}
}

func FromDomainModify(notificationModify *entities.NotificationModify) *NotificationModifyDB {
	if notificationModify == nil {
		return nil
	}
	notificationDB := &NotificationModifyDB{
		ID:          notificationModify.ID,
		RecipientID: notificationModify.RecipientID,
		OrderID:     notificationModify.OrderID,
		Message:     notificationModify.Message,
		CreatedAt:   notificationModify.CreatedAt,
	}

	if notificationModify.OrderStatus != nil {
		status := notificationModify.OrderStatus.String()
		notificationDB.OrderStatus = &status
	}

	return notificationDB
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, notificationDB := range notificationsDB {
		result[i] = *ToDomain(&notificationDB)
	}
	return result
}
