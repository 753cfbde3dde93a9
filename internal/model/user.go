package model

type User struct {
	BaseModel        // 包括 ID, CreatedAt, UpdatedAt, DeletedAt
	Username  string `gorm:"unique;not null"`
	Password  string `gorm:"not null"`
	FullName  string
	AvatarURL string
}
