package models

import "time"

type NotificationAction string

const (
	ActionCreate       NotificationAction = "create"
	ActionUpdate       NotificationAction = "update"
	ActionStatusChange NotificationAction = "status_change"
	ActionDelete       NotificationAction = "delete"
	ActionOther        NotificationAction = "other"
)

// Notification — журнал отправленных событий, только добавление.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	NotificationID string `gorm:"uniqueIndex;size:36;not null" json:"notificationId"`
	To             string `gorm:"size:255;not null" json:"to"`
	Subject        string `gorm:"size:255" json:"subject"`
	Message        string `gorm:"type:text" json:"message"`

	Module string             `gorm:"size:50" json:"module"`
	Action NotificationAction `gorm:"size:20" json:"action"`

	TriggeredBy string `gorm:"size:36" json:"triggeredBy,omitempty"`
	Sent        bool   `json:"sent"`
}
