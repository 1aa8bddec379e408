package trade

import (
	"time"
)

type Side string

const (
	Buy     Side = "BUY"
	Sell    Side = "SELL"
	Unknown Side = "UNKNOWN"
)

// Record is a single closed trade as delivered by a source. OpenTime is zero
// when the source could not supply or parse it.
type Record struct {
	ID           int64
	RobotID      int64
	Asset        string
	OpenTime     time.Time
	CloseTime    *time.Time
	Type         Side
	Quantity     *float64
	OpenPrice    *float64
	ClosePrice   *float64
	ResultPoints *float64
}

func (r Record) Result() (float64, bool) {
	if r.ResultPoints == nil {
		return 0, false
	}
	return *r.ResultPoints, true
}

func (r Record) Timed() bool {
	return !r.OpenTime.IsZero()
}

// Usable reports whether the record can contribute to a time-ordered aggregate.
func (r Record) Usable() bool {
	return r.Timed() && r.ResultPoints != nil
}

func Points(v float64) *float64 {
	return &v
}

func ParseSide(s string) Side {
	switch s {
	case "BUY", "COMPRA", "buy":
		return Buy
	case "SELL", "VENDA", "sell":
		return Sell
	default:
		return Unknown
	}
}

// Query narrows what a source fetches. Zero values mean no restriction; Limit
// is bounded by the source's own record cap.
type Query struct {
	Robots []int64
	Schema string
	Skip   int
	Limit  int
}
