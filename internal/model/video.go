package model

// Video是频道的内容主体。注意这里没有like_count之类的冗余计数列，
// 点赞数一律靠likes表的COUNT查询算出来，避免计数器和真实边不一致
type Video struct {
	BaseModel
	AuthorID    uint64 `gorm:"not null;index"` // 作者ID，作者即频道
	Title       string `gorm:"not null"`
	Description string
	Views       uint64 `gorm:"default:0"` // 播放量由播放链路累加，这里只是元数据

	VideoURL string `gorm:"not null"` // 视频播放地址
	CoverURL string `gorm:"not null"` // 视频封面地址

	// 外键AuthorID关联users表的ID
	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}
