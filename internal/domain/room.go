package domain

import "time"

type ServiceType string

const (
	ServiceMeeting  ServiceType = "MEETING"
	ServicePodMono  ServiceType = "POD_MONO"
	ServicePodMulti ServiceType = "POD_MULTI"
)

// SlotStep returns the start/end time granularity for the service type:
// 30-minute steps for meeting rooms, 15-minute steps for pods.
func (t ServiceType) SlotStep() int {
	if t == ServiceMeeting {
		return 30
	}
	return 15
}

type Room struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Type        ServiceType `json:"type" validate:"required" gorm:"type:varchar(16)"`
	Capacity    int         `json:"capacity" validate:"required,gt=0"`
	Description string      `json:"description,omitempty"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
