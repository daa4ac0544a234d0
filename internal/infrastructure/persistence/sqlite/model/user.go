package model

type User struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;type:text;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash;type:text;not null"`
	Role         string `gorm:"column:role;type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
