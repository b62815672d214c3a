package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
)

// CombineDate builds an ISO date from form components. Any zero part yields nil.
// The calendar is not checked, 31-02-2024 comes out as 2024-02-31.
func CombineDate(day int, month int, year int) *string {
	if day == 0 || month == 0 || year == 0 {
		return nil
	}
	s := fmt.Sprintf("%d-%02d-%02d", year, month, day)
	return &s
}

// SplitDate is the inverse of CombineDate. It also accepts full timestamps.
func SplitDate(value *string) entities.DateComponents {
	if value == nil || *value == "" {
		return entities.DateComponents{}
	}

	datePart, _, _ := strings.Cut(*value, "T")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return entities.DateComponents{}
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return entities.DateComponents{}
	}

	return entities.DateComponents{
		Day:   day,
		Month: month,
		Year:  year,
	}
}
