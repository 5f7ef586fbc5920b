package calendar

import "nerdspace/internal/domain"

// Grid is the admin day view: one column per room, one row per hourly
// bucket between 08:00 and 22:00.
type Grid struct {
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
	Columns []Column `json:"columns"`
}

type Column struct {
	RoomID   int64              `json:"room_id"`
	RoomName string             `json:"room_name"`
	RoomType domain.ServiceType `json:"room_type"`
	Cells    []Cell             `json:"cells"`
}

// Cell positions one booking inside its hourly bucket. OffsetPct and
// HeightPct are percentages of the 60-minute bucket height, so a 09:30-10:15
// booking renders at offset 50% with height 75% in the 09:00 row.
type Cell struct {
	BookingID int64                `json:"booking_id"`
	Status    domain.BookingStatus `json:"status"`
	StartTime string               `json:"start_time"`
	EndTime   string               `json:"end_time"`
	Guests    int                  `json:"guests"`
	SlotIndex int                  `json:"slot_index"`
	OffsetPct float64              `json:"offset_pct"`
	HeightPct float64              `json:"height_pct"`
}
