package availability

import "nerdspace/internal/pkg/timeslot"

type SlotsResponse struct {
	RoomID      int64           `json:"room_id"`
	Date        string          `json:"date"`
	BookedSlots []timeslot.Slot `json:"booked_slots"`
}

type CheckRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CheckResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
