package model

import (
	"time"

	"gorm.io/gorm"
)

// ContestStatus is the lifecycle phase of a contest relative to a point in time.
type ContestStatus string

const (
	ContestUpcoming  ContestStatus = "upcoming"
	ContestActive    ContestStatus = "active"
	ContestCompleted ContestStatus = "completed"
)

type Contest struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	StartingTime time.Time      `json:"starting_time" gorm:"not null;index"`
	Duration     time.Duration  `json:"duration" gorm:"not null"`
	Genres       []Genre        `json:"genres,omitempty" gorm:"many2many:contest_genres;"`
	CreatorID    uint           `json:"creator_id" gorm:"not null;index"`
	Creator      User           `json:"-" gorm:"foreignKey:CreatorID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// EndTime is always derived, never stored.
func (c *Contest) EndTime() time.Time {
	return c.StartingTime.Add(c.Duration)
}

// StatusAt classifies the contest as upcoming, active or completed relative
// to now. Both boundaries belong to the active phase: a contest is active at
// its starting time and still active at starting_time + duration.
func (c *Contest) StatusAt(now time.Time) ContestStatus {
	if now.Before(c.StartingTime) {
		return ContestUpcoming
	}
	if now.After(c.EndTime()) {
		return ContestCompleted
	}
	return ContestActive
}
