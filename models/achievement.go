package models

import "time"

// Achievement is a catalog entry ("selo"). PointsRequired is the points
// threshold a user must reach to unlock it.
type Achievement struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:120;uniqueIndex;not null" json:"nome"`
	Description    string    `gorm:"size:255" json:"descricao"`
	Icon           string    `gorm:"size:60" json:"icone"`
	Color          string    `gorm:"size:16" json:"cor"`
	PointsRequired int       `gorm:"not null;default:0" json:"pontos_necessarios"`
	CreatedAt      time.Time `json:"-"`
}

// UserAchievement records that a user unlocked an achievement. The composite
// primary key makes duplicate holdings impossible at the storage level; the
// assignment engine inserts with ON CONFLICT DO NOTHING.
type UserAchievement struct {
	UserID        uint      `gorm:"primaryKey;autoIncrement:false" json:"usuario_id"`
	AchievementID uint      `gorm:"primaryKey;autoIncrement:false" json:"conquista_id"`
	AwardedAt     time.Time `json:"conquistada_em"`
}
