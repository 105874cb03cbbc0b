package database

import (
	"encoding/json"
	"time"

	"timesheet-backend/internal/models"
)

// helper для записи в журнал изменений; ошибки не роняют основную операцию
func AppendTracking(module, entityID, method, userID, userName string, changedFields map[string]any) {
	if DB == nil {
		return
	}

	var seq int64
	_ = DB.Model(&models.RecordTracking{}).
		Where("module = ? AND entity_id = ?", module, entityID).
		Count(&seq).Error

	snapshot := ""
	if len(changedFields) > 0 {
		if raw, err := json.Marshal(changedFields); err == nil {
			snapshot = string(raw)
		}
	}

	record := models.RecordTracking{
		Seq:           int(seq) + 1,
		Module:        module,
		EntityID:      entityID,
		Method:        method,
		UserID:        userID,
		UserName:      userName,
		ModifiedAt:    time.Now(),
		ChangedFields: snapshot,
	}
	_ = DB.Create(&record).Error
}
