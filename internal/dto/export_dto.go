package dto

import "encoding/json"

// ProjectExportData 项目导出文档（导出产物 = 导入入参）
// 所有跨实体引用都用名称/标题表达，内部 ID 不出库
type ProjectExportData struct {
	Version    string `json:"version"`
	ExportTime string `json:"export_time"`

	Project *ProjectData `json:"project"`

	Chapters            []ChapterExportData            `json:"chapters"`
	Characters          []CharacterExportData          `json:"characters"`
	Outlines            []OutlineExportData            `json:"outlines"`
	Relationships       []RelationshipExportData       `json:"relationships"`
	Organizations       []OrganizationExportData       `json:"organizations"`
	OrganizationMembers []OrganizationMemberExportData `json:"organization_members"`
	WritingStyles       []WritingStyleExportData       `json:"writing_styles"`
	GenerationHistory   []GenerationHistoryExportData  `json:"generation_history"`
}

// ProjectData 项目基本信息
type ProjectData struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Theme                string `json:"theme"`
	Genre                string `json:"genre"`
	TargetWords          int    `json:"target_words"`
	CurrentWords         int    `json:"current_words"`
	Status               string `json:"status"`
	WorldTimePeriod      string `json:"world_time_period"`
	WorldLocation        string `json:"world_location"`
	WorldAtmosphere      string `json:"world_atmosphere"`
	WorldRules           string `json:"world_rules"`
	ChapterCount         int    `json:"chapter_count"`
	NarrativePerspective string `json:"narrative_perspective"`
	CharacterCount       int    `json:"character_count"`
	OutlineMode          string `json:"outline_mode"`
	UserID               uint   `json:"user_id"`
	CreatedAt            string `json:"created_at,omitempty"`
}

// ChapterExportData 章节，outline_title 是对大纲的名称引用
type ChapterExportData struct {
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Summary       string          `json:"summary"`
	ChapterNumber int             `json:"chapter_number"`
	WordCount     int             `json:"word_count"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at,omitempty"`
	OutlineTitle  string          `json:"outline_title,omitempty"`
	SubIndex      *int            `json:"sub_index,omitempty"`
	ExpansionPlan json.RawMessage `json:"expansion_plan,omitempty"`
}

// CharacterExportData 角色。name 在文档内必须唯一，是关系/组织的解析目标
type CharacterExportData struct {
	Name                string          `json:"name"`
	Age                 int             `json:"age"`
	Gender              string          `json:"gender"`
	IsOrganization      bool            `json:"is_organization"`
	RoleType            string          `json:"role_type"`
	Personality         string          `json:"personality"`
	Background          string          `json:"background"`
	Appearance          string          `json:"appearance"`
	Traits              json.RawMessage `json:"traits,omitempty"`
	OrganizationType    string          `json:"organization_type,omitempty"`
	OrganizationPurpose string          `json:"organization_purpose,omitempty"`
	CreatedAt           string          `json:"created_at,omitempty"`
}

// OutlineExportData 大纲。title 是章节 outline_title 的解析目标
type OutlineExportData struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Structure  string `json:"structure"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// RelationshipExportData 角色关系，两端都是名称引用
// 数值字段用指针区分"缺省"和"显式 0"，缺省时导入端补默认值
type RelationshipExportData struct {
	SourceName       string `json:"source_name"`
	TargetName       string `json:"target_name"`
	RelationshipName string `json:"relationship_name"`
	IntimacyLevel    *int   `json:"intimacy_level,omitempty"`
	Status           string `json:"status,omitempty"`
	Description      string `json:"description"`
	StartedAt        string `json:"started_at,omitempty"`
}

// OrganizationExportData 组织详情，character_name 指向组织自身的角色行
type OrganizationExportData struct {
	CharacterName string `json:"character_name"`
	ParentOrgName string `json:"parent_org_name,omitempty"`
	PowerLevel    *int   `json:"power_level,omitempty"`
	MemberCount   *int   `json:"member_count,omitempty"`
	Location      string `json:"location"`
	Motto         string `json:"motto"`
	Color         string `json:"color"`
}

// OrganizationMemberExportData 组织成员，两端都是名称引用
type OrganizationMemberExportData struct {
	OrganizationName string `json:"organization_name"`
	CharacterName    string `json:"character_name"`
	Position         string `json:"position"`
	Rank             *int   `json:"rank,omitempty"`
	Status           string `json:"status,omitempty"`
	JoinedAt         string `json:"joined_at,omitempty"`
	Loyalty          *int   `json:"loyalty,omitempty"`
	Contribution     *int   `json:"contribution,omitempty"`
	Notes            string `json:"notes"`
}

// WritingStyleExportData 写作风格（用户级，按 name 去重导入）
type WritingStyleExportData struct {
	Name          string `json:"name"`
	StyleType     string `json:"style_type"`
	PresetID      string `json:"preset_id"`
	Description   string `json:"description"`
	PromptContent string `json:"prompt_content"`
	OrderIndex    int    `json:"order_index"`
}

// GenerationHistoryExportData 生成历史（只导出，不导入）
type GenerationHistoryExportData struct {
	ChapterTitle     string  `json:"chapter_title,omitempty"`
	Prompt           string  `json:"prompt"`
	GeneratedContent string  `json:"generated_content"`
	Model            string  `json:"model"`
	TokensUsed       int     `json:"tokens_used"`
	GenerationTime   float64 `json:"generation_time"`
	CreatedAt        string  `json:"created_at,omitempty"`
}
