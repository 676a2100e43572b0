package model

import "gorm.io/datatypes"

// Chapter 章节正文
type Chapter struct {
	BaseModel
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	Title   string `gorm:"size:255" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Summary string `gorm:"type:text" json:"summary"`

	ChapterNumber int `gorm:"index" json:"chapter_number"`
	WordCount     int `gorm:"default:0" json:"word_count"`

	// 状态机: draft -> generating -> completed
	Status string `gorm:"size:20;default:'draft'" json:"status"`

	// 一对多大纲模式下，同一大纲展开出的第几个章节
	SubIndex *int `json:"sub_index"`

	// 所属大纲（可空，导入时按标题重建）
	OutlineID *uint `gorm:"index" json:"outline_id"`

	// 展开计划 (JSON) - 大纲展开时由模型生成的结构化规划
	ExpansionPlan datatypes.JSON `json:"expansion_plan"`
}
