package entities

import "time"

// CacheEntry is one session store value when sessions are kept in mysql.
//
// Entries are hard deleted, so there is no gorm.Model here.
type CacheEntry struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Segment   string    `gorm:"uniqueIndex:idx_uq_segment_key;type:varchar(32) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Key       string    `gorm:"column:cache_key;uniqueIndex:idx_uq_segment_key;type:varchar(128) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Value     []byte    `gorm:"type:mediumblob"`
	ExpiresAt time.Time `gorm:"index;NOT NULL"`
}
