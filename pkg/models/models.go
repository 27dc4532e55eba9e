package models

import (
	"time"

	"gorm.io/datatypes"
)

type Device struct {
	ID          uint    `gorm:"primaryKey"`
	Ident       string  `gorm:"uniqueIndex;size:255;not null"`
	Type        *string `gorm:"size:64"`
	GroupID     *uint   `gorm:"index"`
	DateCreated time.Time
	DateUpdated time.Time
	DateSeen    *time.Time

	Group *Group `gorm:"foreignKey:GroupID"`

	History []PropertyHistory `gorm:"foreignKey:DeviceID"`
	Current []CurrentProperty `gorm:"foreignKey:DeviceID"`
	Events  []EventLog        `gorm:"foreignKey:DeviceID"`
}

// Group is a node of the administrative device tree. Depth is computed once,
// when the group is created, from its parent.
type Group struct {
	ID       uint   `gorm:"primaryKey"`
	Ident    string `gorm:"uniqueIndex;size:255;not null"`
	Name     string `gorm:"size:255"`
	ParentID *uint  `gorm:"index"`
	Depth    int

	Parent *Group `gorm:"foreignKey:ParentID"`
}

// PropertyHistory is append-only; (device_id, name, timestamp) is unique.
type PropertyHistory struct {
	ID        uint      `gorm:"primaryKey"`
	DeviceID  uint      `gorm:"not null;uniqueIndex:idx_property_history_key,priority:1"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_property_history_key,priority:2"`
	Timestamp time.Time `gorm:"not null;uniqueIndex:idx_property_history_key,priority:3"`
	Value     string    `gorm:"type:text"`
}

func (PropertyHistory) TableName() string { return "property_history" }

// CurrentProperty mirrors the newest PropertyHistory row of each (device_id, name).
// Timestamp is the timestamp of that row.
type CurrentProperty struct {
	ID        uint      `gorm:"primaryKey"`
	DeviceID  uint      `gorm:"not null;uniqueIndex:idx_current_property_key,priority:1"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_current_property_key,priority:2"`
	Timestamp time.Time `gorm:"not null"`
	Value     string    `gorm:"type:text"`
}

// EventLog is append-only; (device_id, type, timestamp) is unique.
type EventLog struct {
	ID        uint           `gorm:"primaryKey"`
	DeviceID  uint           `gorm:"not null;uniqueIndex:idx_event_log_key,priority:1"`
	Type      string         `gorm:"size:255;not null;uniqueIndex:idx_event_log_key,priority:2"`
	Timestamp time.Time      `gorm:"not null;uniqueIndex:idx_event_log_key,priority:3"`
	Source    string         `gorm:"size:64"`
	Payload   datatypes.JSON `gorm:"type:text"`
}

type Setting struct {
	Name  string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text"`
}
