package models

import (
	"time"
)

// Doctor model
type Doctor struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	Name       string    `gorm:"column:name;not null;index" json:"name"`
	Speciality string    `gorm:"column:speciality;not null;index" json:"speciality"`
	Degree     string    `gorm:"column:degree" json:"degree"`
	Experience int       `gorm:"column:experience;not null" json:"experience"`
	Location   string    `gorm:"column:location" json:"location"`
	About      string    `gorm:"column:about;type:text" json:"about"`
	Available  bool      `gorm:"column:available;not null" json:"available"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Doctor) TableName() string {
	return "doctor"
}
