package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CustomerID string `gorm:"uniqueIndex;size:36;not null" json:"customerId"`
	Name       string `gorm:"size:255;not null" json:"name"`

	// последовательный код вида "0001", выдаётся один раз и не меняется
	Code string `gorm:"uniqueIndex;size:10;not null" json:"code"`

	Address string `gorm:"size:500" json:"address,omitempty"`

	CreatedBy string `gorm:"size:36" json:"createdBy,omitempty"`
	UpdatedBy string `gorm:"size:36" json:"updatedBy,omitempty"`
}
