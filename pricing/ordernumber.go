package pricing

import (
	"fmt"
	"time"
)

// OrderNumberPrefix starts every order number.
const OrderNumberPrefix = "MB"

// GenerateOrderNumber formats an order number from a running sequence index
// and a creation date: "MB" + YYYYMMDD + zero-padded 4-digit sequence. The
// sequence is store-lifetime monotonic and never resets per day; the caller
// must obtain it from an atomic counter.
func GenerateOrderNumber(seq int64, date time.Time) string {
	return fmt.Sprintf("%s%s%04d", OrderNumberPrefix, date.Format("20060102"), seq)
}
