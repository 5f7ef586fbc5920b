package booking

type CreateBookingRequest struct {
	RoomID    int64  `json:"room_id" binding:"required" validate:"required"`
	Date      string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required" validate:"clock"`
	EndTime   string `json:"end_time" binding:"required" validate:"clock"`
	Guests    int    `json:"guests" validate:"gte=0"`
	Notes     string `json:"notes"`

	// Filled from the auth context, not the request body.
	UserID int64 `json:"-"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}
