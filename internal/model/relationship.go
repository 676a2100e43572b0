package model

// CharacterRelationship 角色间的有向关系
type CharacterRelationship struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	CharacterFromID uint `gorm:"index;not null" json:"character_from_id"`
	CharacterToID   uint `gorm:"index;not null" json:"character_to_id"`

	RelationshipName string `gorm:"size:100" json:"relationship_name"`

	// 亲密度 0-100
	IntimacyLevel int `gorm:"default:50" json:"intimacy_level"`

	// active / broken / hidden
	Status string `gorm:"size:20;default:'active'" json:"status"`

	Description string `gorm:"type:text" json:"description"`
	StartedAt   string `gorm:"size:100" json:"started_at"`
}

// Organization 组织详情，挂在一个 is_organization 的角色行上
type Organization struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	CharacterID uint `gorm:"index;not null" json:"character_id"`

	// 上级组织（可空，组织构成一棵树）
	ParentOrgID *uint `gorm:"index" json:"parent_org_id"`

	// 势力值 0-100
	PowerLevel  int `gorm:"default:50" json:"power_level"`
	MemberCount int `gorm:"default:0" json:"member_count"`

	Location string `gorm:"size:255" json:"location"`
	Motto    string `gorm:"size:255" json:"motto"`
	Color    string `gorm:"size:20" json:"color"`

	// 关联
	Members []OrganizationMember `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
}

// OrganizationMember 角色在组织中的成员关系
type OrganizationMember struct {
	BaseModel
	OrganizationID uint `gorm:"index;not null" json:"organization_id"`
	CharacterID    uint `gorm:"index;not null" json:"character_id"`

	Position string `gorm:"size:100" json:"position"`
	Rank     int    `gorm:"default:0" json:"rank"`

	// active / left / expelled
	Status string `gorm:"size:20;default:'active'" json:"status"`

	JoinedAt string `gorm:"size:100" json:"joined_at"`

	// 忠诚度/贡献度 0-100
	Loyalty      int `gorm:"default:50" json:"loyalty"`
	Contribution int `gorm:"default:0" json:"contribution"`

	Notes string `gorm:"type:text" json:"notes"`
}
