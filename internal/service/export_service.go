package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"NovelForge/internal/data"
	"NovelForge/internal/dto"
	"NovelForge/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SupportedVersion 导出文档格式版本
const SupportedVersion = "1.0.0"

// generationHistoryLimit 生成历史最多导出条数（固定设计常量，不做分页）
const generationHistoryLimit = 100

// ErrProjectNotFound 导出目标项目不存在
var ErrProjectNotFound = errors.New("项目不存在")

// ImportExportService 项目导入导出服务
type ImportExportService struct {
	Data *data.Data
}

func NewImportExportService(d *data.Data) *ImportExportService {
	return &ImportExportService{Data: d}
}

// ExportProject 导出项目完整数据
// includeHistory 默认关、includeStyles 默认开，由调用方决定
func (s *ImportExportService) ExportProject(ctx context.Context, projectID uint, includeHistory, includeStyles bool) (*dto.ProjectExportData, error) {
	db := s.Data.DB.WithContext(ctx)

	log.Printf("开始导出项目: %d", projectID)

	// 1. 项目基本信息
	var project model.Project
	if err := db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, projectID)
		}
		return nil, err
	}

	projectData := &dto.ProjectData{
		Title:                project.Title,
		Description:          project.Description,
		Theme:                project.Theme,
		Genre:                project.Genre,
		TargetWords:          project.TargetWords,
		CurrentWords:         project.CurrentWords,
		Status:               project.Status,
		WorldTimePeriod:      project.WorldTimePeriod,
		WorldLocation:        project.WorldLocation,
		WorldAtmosphere:      project.WorldAtmosphere,
		WorldRules:           project.WorldRules,
		ChapterCount:         project.ChapterCount,
		NarrativePerspective: project.NarrativePerspective,
		CharacterCount:       project.CharacterCount,
		OutlineMode:          project.OutlineMode,
		UserID:               project.UserID,
		CreatedAt:            formatTime(project.CreatedAt),
	}

	// 2. 各实体集合
	chapters, err := s.exportChapters(db, projectID)
	if err != nil {
		return nil, err
	}
	log.Printf("导出章节数: %d", len(chapters))

	characters, err := s.exportCharacters(db, projectID)
	if err != nil {
		return nil, err
	}
	log.Printf("导出角色数: %d", len(characters))

	outlines, err := s.exportOutlines(db, projectID)
	if err != nil {
		return nil, err
	}
	log.Printf("导出大纲数: %d", len(outlines))

	relationships, err := s.exportRelationships(db, projectID)
	if err != nil {
		return nil, err
	}
	log.Printf("导出关系数: %d", len(relationships))

	organizations, err := s.exportOrganizations(db, projectID)
	if err != nil {
		return nil, err
	}
	log.Printf("导出组织数: %d", len(organizations))

	orgMembers, err := s.exportOrganizationMembers(db, projectID)
	if err != nil {
		return nil, err
	}
	log.Printf("导出组织成员数: %d", len(orgMembers))

	// 3. 可选集合
	writingStyles := []dto.WritingStyleExportData{}
	if includeStyles {
		writingStyles, err = s.exportWritingStyles(db, project.UserID)
		if err != nil {
			return nil, err
		}
		log.Printf("导出写作风格数: %d", len(writingStyles))
	}

	generationHistory := []dto.GenerationHistoryExportData{}
	if includeHistory {
		generationHistory, err = s.exportGenerationHistory(db, projectID)
		if err != nil {
			return nil, err
		}
		log.Printf("导出生成历史数: %d", len(generationHistory))
	}

	log.Printf("项目导出完成: %d", projectID)

	return &dto.ProjectExportData{
		Version:             SupportedVersion,
		ExportTime:          time.Now().UTC().Format(time.RFC3339),
		Project:             projectData,
		Chapters:            chapters,
		Characters:          characters,
		Outlines:            outlines,
		Relationships:       relationships,
		Organizations:       organizations,
		OrganizationMembers: orgMembers,
		WritingStyles:       writingStyles,
		GenerationHistory:   generationHistory,
	}, nil
}

// exportChapters 按章节号升序导出，大纲引用降级为大纲标题
func (s *ImportExportService) exportChapters(db *gorm.DB, projectID uint) ([]dto.ChapterExportData, error) {
	var chapters []model.Chapter
	if err := db.Where("project_id = ?", projectID).
		Order("chapter_number").
		Find(&chapters).Error; err != nil {
		return nil, err
	}

	// 构建大纲 ID -> 标题 映射（一次批量查询，不按章节逐条查）
	outlineTitles := map[uint]string{}
	var outlineIDs []uint
	for _, ch := range chapters {
		if ch.OutlineID != nil {
			outlineIDs = append(outlineIDs, *ch.OutlineID)
		}
	}
	if len(outlineIDs) > 0 {
		var outlines []model.Outline
		if err := db.Where("id IN ?", outlineIDs).Find(&outlines).Error; err != nil {
			return nil, err
		}
		for _, ol := range outlines {
			outlineTitles[ol.ID] = ol.Title
		}
	}

	exported := []dto.ChapterExportData{}
	for _, ch := range chapters {
		outlineTitle := ""
		if ch.OutlineID != nil {
			outlineTitle = outlineTitles[*ch.OutlineID]
		}

		exported = append(exported, dto.ChapterExportData{
			Title:         ch.Title,
			Content:       ch.Content,
			Summary:       ch.Summary,
			ChapterNumber: ch.ChapterNumber,
			WordCount:     ch.WordCount,
			Status:        ch.Status,
			CreatedAt:     formatTime(ch.CreatedAt),
			OutlineTitle:  outlineTitle,
			SubIndex:      ch.SubIndex,
			ExpansionPlan: normalizeJSONField(ch.ExpansionPlan),
		})
	}
	return exported, nil
}

func (s *ImportExportService) exportCharacters(db *gorm.DB, projectID uint) ([]dto.CharacterExportData, error) {
	var characters []model.Character
	if err := db.Where("project_id = ?", projectID).Find(&characters).Error; err != nil {
		return nil, err
	}

	exported := []dto.CharacterExportData{}
	for _, char := range characters {
		exported = append(exported, dto.CharacterExportData{
			Name:                char.Name,
			Age:                 char.Age,
			Gender:              char.Gender,
			IsOrganization:      char.IsOrganization,
			RoleType:            char.RoleType,
			Personality:         char.Personality,
			Background:          char.Background,
			Appearance:          char.Appearance,
			Traits:              normalizeJSONField(char.Traits),
			OrganizationType:    char.OrganizationType,
			OrganizationPurpose: char.OrganizationPurpose,
			CreatedAt:           formatTime(char.CreatedAt),
		})
	}
	return exported, nil
}

func (s *ImportExportService) exportOutlines(db *gorm.DB, projectID uint) ([]dto.OutlineExportData, error) {
	var outlines []model.Outline
	if err := db.Where("project_id = ?", projectID).
		Order("order_index").
		Find(&outlines).Error; err != nil {
		return nil, err
	}

	exported := []dto.OutlineExportData{}
	for _, ol := range outlines {
		exported = append(exported, dto.OutlineExportData{
			Title:      ol.Title,
			Content:    ol.Content,
			Structure:  ol.Structure,
			OrderIndex: ol.OrderIndex,
			CreatedAt:  formatTime(ol.CreatedAt),
		})
	}
	return exported, nil
}

// exportRelationships 关系两端降级为角色名，任一端角色缺失则丢弃该条
func (s *ImportExportService) exportRelationships(db *gorm.DB, projectID uint) ([]dto.RelationshipExportData, error) {
	var relationships []model.CharacterRelationship
	if err := db.Where("project_id = ?", projectID).Find(&relationships).Error; err != nil {
		return nil, err
	}

	charNames, err := s.characterNameIndex(db, projectID)
	if err != nil {
		return nil, err
	}

	exported := []dto.RelationshipExportData{}
	for _, rel := range relationships {
		sourceName, okFrom := charNames[rel.CharacterFromID]
		targetName, okTo := charNames[rel.CharacterToID]
		if !okFrom || !okTo {
			// 目标角色已删除等情况：丢弃而不是报错
			continue
		}

		exported = append(exported, dto.RelationshipExportData{
			SourceName:       sourceName,
			TargetName:       targetName,
			RelationshipName: rel.RelationshipName,
			IntimacyLevel:    intPtr(orDefault(rel.IntimacyLevel, 50)),
			Status:           strDefault(rel.Status, "active"),
			Description:      rel.Description,
			StartedAt:        rel.StartedAt,
		})
	}
	return exported, nil
}

// exportOrganizations 组织以其角色行的名称为标识，父组织引用同样降级为名称
func (s *ImportExportService) exportOrganizations(db *gorm.DB, projectID uint) ([]dto.OrganizationExportData, error) {
	var organizations []model.Organization
	if err := db.Where("project_id = ?", projectID).Find(&organizations).Error; err != nil {
		return nil, err
	}

	charNames, err := s.characterNameIndex(db, projectID)
	if err != nil {
		return nil, err
	}

	orgByID := map[uint]model.Organization{}
	for _, org := range organizations {
		orgByID[org.ID] = org
	}

	exported := []dto.OrganizationExportData{}
	for _, org := range organizations {
		name, ok := charNames[org.CharacterID]
		if !ok {
			// 角色行缺失的组织没有可用标识，排除
			continue
		}

		parentName := ""
		if org.ParentOrgID != nil {
			if parent, ok := orgByID[*org.ParentOrgID]; ok {
				parentName = charNames[parent.CharacterID]
			}
		}

		exported = append(exported, dto.OrganizationExportData{
			CharacterName: name,
			ParentOrgName: parentName,
			PowerLevel:    intPtr(orDefault(org.PowerLevel, 50)),
			MemberCount:   intPtr(org.MemberCount),
			Location:      org.Location,
			Motto:         org.Motto,
			Color:         org.Color,
		})
	}
	return exported, nil
}

// exportOrganizationMembers 成员要求组织角色和成员角色都能解析，否则丢弃
func (s *ImportExportService) exportOrganizationMembers(db *gorm.DB, projectID uint) ([]dto.OrganizationMemberExportData, error) {
	var organizations []model.Organization
	if err := db.Where("project_id = ?", projectID).Find(&organizations).Error; err != nil {
		return nil, err
	}
	if len(organizations) == 0 {
		return []dto.OrganizationMemberExportData{}, nil
	}

	orgIDs := make([]uint, 0, len(organizations))
	orgCharID := map[uint]uint{}
	for _, org := range organizations {
		orgIDs = append(orgIDs, org.ID)
		orgCharID[org.ID] = org.CharacterID
	}

	var members []model.OrganizationMember
	if err := db.Where("organization_id IN ?", orgIDs).Find(&members).Error; err != nil {
		return nil, err
	}

	charNames, err := s.characterNameIndex(db, projectID)
	if err != nil {
		return nil, err
	}

	exported := []dto.OrganizationMemberExportData{}
	for _, member := range members {
		orgName, okOrg := charNames[orgCharID[member.OrganizationID]]
		memberName, okChar := charNames[member.CharacterID]
		if !okOrg || !okChar {
			continue
		}

		exported = append(exported, dto.OrganizationMemberExportData{
			OrganizationName: orgName,
			CharacterName:    memberName,
			Position:         member.Position,
			Rank:             intPtr(member.Rank),
			Status:           strDefault(member.Status, "active"),
			JoinedAt:         member.JoinedAt,
			Loyalty:          intPtr(orDefault(member.Loyalty, 50)),
			Contribution:     intPtr(member.Contribution),
			Notes:            member.Notes,
		})
	}
	return exported, nil
}

// exportWritingStyles 导出项目所属用户的自定义风格（用户级集合，不含全局预设）
func (s *ImportExportService) exportWritingStyles(db *gorm.DB, userID uint) ([]dto.WritingStyleExportData, error) {
	var styles []model.WritingStyle
	if err := db.Where("user_id = ?", userID).
		Order("order_index").
		Find(&styles).Error; err != nil {
		return nil, err
	}

	exported := []dto.WritingStyleExportData{}
	for _, style := range styles {
		exported = append(exported, dto.WritingStyleExportData{
			Name:          style.Name,
			StyleType:     style.StyleType,
			PresetID:      style.PresetID,
			Description:   style.Description,
			PromptContent: style.PromptContent,
			OrderIndex:    style.OrderIndex,
		})
	}
	return exported, nil
}

// exportGenerationHistory 最多导出最近 100 条，按创建时间倒序
func (s *ImportExportService) exportGenerationHistory(db *gorm.DB, projectID uint) ([]dto.GenerationHistoryExportData, error) {
	var histories []model.GenerationHistory
	if err := db.Where("project_id = ?", projectID).
		Order("created_at desc").
		Limit(generationHistoryLimit).
		Find(&histories).Error; err != nil {
		return nil, err
	}

	// 章节引用降级为章节标题，章节已删除则留空
	chapterTitles := map[uint]string{}
	var chapterIDs []uint
	for _, h := range histories {
		if h.ChapterID != nil {
			chapterIDs = append(chapterIDs, *h.ChapterID)
		}
	}
	if len(chapterIDs) > 0 {
		var chapters []model.Chapter
		if err := db.Where("id IN ?", chapterIDs).Find(&chapters).Error; err != nil {
			return nil, err
		}
		for _, ch := range chapters {
			chapterTitles[ch.ID] = ch.Title
		}
	}

	exported := []dto.GenerationHistoryExportData{}
	for _, h := range histories {
		chapterTitle := ""
		if h.ChapterID != nil {
			chapterTitle = chapterTitles[*h.ChapterID]
		}

		exported = append(exported, dto.GenerationHistoryExportData{
			ChapterTitle:     chapterTitle,
			Prompt:           h.Prompt,
			GeneratedContent: h.GeneratedContent,
			Model:            h.Model,
			TokensUsed:       h.TokensUsed,
			GenerationTime:   h.GenerationTime,
			CreatedAt:        formatTime(h.CreatedAt),
		})
	}
	return exported, nil
}

// characterNameIndex 项目全部角色的 ID -> 名称 索引
func (s *ImportExportService) characterNameIndex(db *gorm.DB, projectID uint) (map[uint]string, error) {
	var characters []model.Character
	if err := db.Where("project_id = ?", projectID).Find(&characters).Error; err != nil {
		return nil, err
	}
	index := make(map[uint]string, len(characters))
	for _, char := range characters {
		index[char.ID] = char.Name
	}
	return index, nil
}

// normalizeJSONField 把存库的 JSON 字段规范化为结构化数据
// 兼容历史数据里二次序列化成字符串的情况，解析失败一律置空
func normalizeJSONField(raw datatypes.JSON) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return nil
		}
		b, err := json.Marshal(inner)
		if err != nil {
			return nil
		}
		return b
	}
	return json.RawMessage(raw)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func intPtr(v int) *int {
	return &v
}

// orDefault 0 值回落到默认值（与导出文档里"缺省即默认"的口径一致）
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func strDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
