package models

// Follow — направленное ребро: follower подписан на followed
type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"uniqueIndex:idx_follow_edge;not null"`
	FollowedID uint `gorm:"uniqueIndex:idx_follow_edge;not null"`
}
