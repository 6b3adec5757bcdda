package dto

import (
	"time"

	"freeroom/internal/domains/studio/model"
	"freeroom/shared/constant"
)

type StudioResponse struct {
	Name        string `json:"name"`
	RoomCount   int    `json:"room_count"`
	LastRefresh string `json:"last_refresh,omitempty"`
}

func (r *StudioResponse) FromModel(studio model.Studio, roomCount int, lastRefresh time.Time) {
	r.Name = studio.Name
	r.RoomCount = roomCount

	if !lastRefresh.IsZero() {
		r.LastRefresh = lastRefresh.Format(constant.DateFormat)
	}
}

type GetStudiosResponse struct {
	Studios []StudioResponse `json:"studios"`
}
