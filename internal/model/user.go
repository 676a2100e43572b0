package model

// User 平台用户
// 认证由外围网关负责，这里只保留归属关系需要的字段
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email    string `gorm:"size:100" json:"email"`
	Avatar   string `gorm:"size:255" json:"avatar"`

	// 关联
	Projects      []Project      `gorm:"foreignKey:UserID" json:"projects,omitempty"`
	WritingStyles []WritingStyle `gorm:"foreignKey:UserID" json:"writing_styles,omitempty"`
}
