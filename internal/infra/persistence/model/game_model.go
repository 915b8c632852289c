// Package model holds the GORM persistence models.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// GameModel mirrors the 'games' table keyed by Steam application id.
type GameModel struct {
	AppID            string `gorm:"type:varchar(32);primaryKey"`
	Name             string `gorm:"type:varchar(512);not null;index"`
	ShortDescription string `gorm:"type:text"`
	HeaderImage      string `gorm:"type:text"`

	// Developers and Publishers are joined with ", ".
	Developers string `gorm:"type:text"`
	Publishers string `gorm:"type:text"`

	PriceOverview datatypes.JSON
	ReleaseDate   datatypes.JSON

	Placeholder bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}
