package model

import "time"

// SearchCacheEntryModel mirrors the 'search_cache_entries' table.
type SearchCacheEntryModel struct {
	SearchTerm  string    `gorm:"type:varchar(255);primaryKey"`
	AppID       string    `gorm:"type:varchar(32);primaryKey"`
	Name        string    `gorm:"type:varchar(512)"`
	HeaderImage string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SearchCacheEntryModel) TableName() string {
	return "search_cache_entries"
}
