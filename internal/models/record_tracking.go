package models

import "time"

// RecordTracking — журнал изменений: кто, что и когда поменял.
// Seq нумеруется отдельно внутри каждой пары (module, entity).
type RecordTracking struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Seq      int    `json:"seq"`
	Module   string `gorm:"index:idx_tracking_entity;size:50;not null" json:"module"`
	EntityID string `gorm:"index:idx_tracking_entity;size:36;not null" json:"entityId"`
	Method   string `gorm:"size:20;not null" json:"method"` // create / update / delete / other

	UserID   string `gorm:"size:36" json:"userId,omitempty"`
	UserName string `gorm:"size:50" json:"userName,omitempty"`

	ModifiedAt time.Time `json:"modifiedAt"`

	// снимок изменённых полей в JSON
	ChangedFields string `gorm:"type:text" json:"changedFields,omitempty"`
}

// Counter — именованная последовательность в БД.
type Counter struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;size:50;not null"`
	Value int64  `gorm:"not null"`
}
