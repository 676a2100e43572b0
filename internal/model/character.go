package model

import "gorm.io/datatypes"

// Character 角色（is_organization=true 时该行同时代表一个组织）
type Character struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	Name   string `gorm:"size:100;not null;index" json:"name"`
	Age    int    `json:"age"`
	Gender string `gorm:"size:20" json:"gender"`

	IsOrganization bool `gorm:"default:false" json:"is_organization"`

	// 角色定位: protagonist, antagonist, supporting...
	RoleType string `gorm:"size:50" json:"role_type"`

	Personality string `gorm:"type:text" json:"personality"`
	Background  string `gorm:"type:text" json:"background"`
	Appearance  string `gorm:"type:text" json:"appearance"`

	// 性格标签 (JSON 数组)
	Traits datatypes.JSON `json:"traits"`

	// 组织专属字段
	OrganizationType    string `gorm:"size:50" json:"organization_type"`
	OrganizationPurpose string `gorm:"type:text" json:"organization_purpose"`
}
