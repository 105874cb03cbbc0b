package projectcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"timesheet-backend/internal/models"
)

// Make собирает код проекта из кода заказчика, порядкового номера и
// буквенного суффикса: "7" + 1 + "A" -> "0007.0001A".
func Make(customerCode string, serial int, suffix string) models.ProjectCode {
	left := pad4(customerCode)
	code := left + "." + fmt.Sprintf("%04d", serial) + suffix
	return models.ProjectCode{
		CustomerCode: left,
		Serial:       serial,
		Suffix:       suffix,
		Code:         code,
	}
}

// SuffixFor возвращает букву для порядкового номера:
// 1 -> "A" ... 26 -> "Z", 27 -> "A" и так далее по кругу.
func SuffixFor(serial int) string {
	n := serial % 26
	if n == 0 {
		n = 26
	}
	return string(rune('A' + n - 1))
}

// Parse разбирает строку кода обратно на составные части.
func Parse(code string) (customerCode string, serial int, suffix string, err error) {
	left, right, ok := strings.Cut(code, ".")
	if !ok || len(left) != 4 || len(right) != 5 {
		return "", 0, "", errors.New("malformed project code")
	}
	serial, err = strconv.Atoi(right[:4])
	if err != nil {
		return "", 0, "", errors.New("malformed project code serial")
	}
	suffix = right[4:]
	if suffix < "A" || suffix > "Z" {
		return "", 0, "", errors.New("malformed project code suffix")
	}
	return left, serial, suffix, nil
}

// Totals считает суммарные часы и стоимость по списку назначений.
// Средняя ставка равна нулю, когда часов нет.
func Totals(assignments []models.Assignment) (totalHours, totalCost, perHourCost float64) {
	for _, a := range assignments {
		totalHours += a.Hours
		totalCost += a.Hours * a.HourlyRate
	}
	if totalHours > 0 {
		perHourCost = totalCost / totalHours
	}
	return totalHours, totalCost, perHourCost
}

func pad4(s string) string {
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
