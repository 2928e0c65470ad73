package repository

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	APIToken       string `gorm:"size:32;uniqueIndex;not null"` // 16 random bytes, hex encoded
	IsActive       bool   `gorm:"not null;default:true;index"`
	Items          []Item `gorm:"foreignKey:OwnerID"`
}

type Item struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null;index"`
	Description string `gorm:"type:text"`
	OwnerID     *uint  `gorm:"index"` // NULL while the item is unowned
}
