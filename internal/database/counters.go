package database

import (
	"fmt"

	"timesheet-backend/internal/models"

	"gorm.io/gorm"
)

const customerCodeCounter = "customer_code"

// NextCustomerCode выдаёт следующий последовательный код заказчика
// ("0001", "0002", ...). Инкремент — атомарный UPDATE строки-счётчика
// в транзакции, а не переменная процесса: коды остаются уникальными
// при нескольких экземплярах сервиса.
func NextCustomerCode(db *gorm.DB) (string, error) {
	var value int64

	err := db.Transaction(func(tx *gorm.DB) error {
		var counter models.Counter
		err := tx.Where("name = ?", customerCodeCounter).First(&counter).Error
		if err == gorm.ErrRecordNotFound {
			counter = models.Counter{Name: customerCodeCounter, Value: 0}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		result := tx.Model(&models.Counter{}).
			Where("name = ?", customerCodeCounter).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if result.Error != nil {
			return result.Error
		}

		return tx.Model(&models.Counter{}).
			Where("name = ?", customerCodeCounter).
			Select("value").
			Scan(&value).Error
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d", value), nil
}
