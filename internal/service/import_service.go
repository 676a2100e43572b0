package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"NovelForge/internal/dto"
	"NovelForge/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ValidateImportData 验证导入文档的结构最低要求
// 纯函数：不读库不写库，统计信息无论是否有效都会计算
func ValidateImportData(doc *dto.ProjectExportData) *dto.ImportValidationResult {
	errors := []string{}
	warnings := []string{}

	// 检查版本
	version := doc.Version
	if version == "" {
		errors = append(errors, "缺少版本信息")
	} else if version != SupportedVersion {
		warnings = append(warnings, fmt.Sprintf("版本不匹配: 导入文件版本为 %s, 当前支持版本为 %s", version, SupportedVersion))
	}

	// 检查必需字段
	// 占位名只在整个 project 块缺失时使用；标题为空时如实回显空串
	projectName := "未知项目"
	if doc.Project == nil {
		errors = append(errors, "缺少项目信息")
	} else {
		projectName = doc.Project.Title
		if doc.Project.Title == "" {
			errors = append(errors, "项目标题不能为空")
		}
	}

	// 统计数据
	statistics := map[string]int{
		"chapters":             len(doc.Chapters),
		"characters":           len(doc.Characters),
		"outlines":             len(doc.Outlines),
		"relationships":        len(doc.Relationships),
		"organizations":        len(doc.Organizations),
		"organization_members": len(doc.OrganizationMembers),
		"writing_styles":       len(doc.WritingStyles),
		"generation_history":   len(doc.GenerationHistory),
	}

	// 检查数据完整性
	if statistics["chapters"] == 0 {
		warnings = append(warnings, "项目没有章节数据")
	}
	if statistics["characters"] == 0 {
		warnings = append(warnings, "项目没有角色数据")
	}

	return &dto.ImportValidationResult{
		Valid:       len(errors) == 0,
		Version:     version,
		ProjectName: projectName,
		Statistics:  statistics,
		Errors:      errors,
		Warnings:    warnings,
	}
}

// ImportProject 导入项目数据（总是创建新项目，归属 userID）
// 全部步骤在一个事务里执行，任一步失败整体回滚；
// 失败以结果对象返回而不是 error，方便上层展示已累计的统计
func (s *ImportExportService) ImportProject(ctx context.Context, doc *dto.ProjectExportData, userID uint) *dto.ImportResult {
	warnings := []string{}
	statistics := map[string]int{}

	// 1. 验证数据
	validation := ValidateImportData(doc)
	if !validation.Valid {
		return &dto.ImportResult{
			Success:    false,
			Message:    "数据验证失败: " + strings.Join(validation.Errors, ", "),
			Statistics: map[string]int{},
			Warnings:   validation.Warnings,
		}
	}
	warnings = append(warnings, validation.Warnings...)

	log.Printf("开始导入项目: %s", validation.ProjectName)

	var newProjectID uint

	err := s.Data.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 2. 创建项目（归属目标用户，与文档里的原 user_id 无关）
		p := doc.Project
		project := model.Project{
			UserID:               userID,
			Title:                p.Title,
			Description:          p.Description,
			Theme:                p.Theme,
			Genre:                p.Genre,
			TargetWords:          p.TargetWords,
			Status:               strDefault(p.Status, "planning"),
			WorldTimePeriod:      p.WorldTimePeriod,
			WorldLocation:        p.WorldLocation,
			WorldAtmosphere:      p.WorldAtmosphere,
			WorldRules:           p.WorldRules,
			ChapterCount:         p.ChapterCount,
			NarrativePerspective: p.NarrativePerspective,
			CharacterCount:       p.CharacterCount,
			OutlineMode:          strDefault(p.OutlineMode, "one-to-many"),
			CurrentWords:         p.CurrentWords, // 保留原项目的字数，不重算
			WizardStep:           4,              // 导入的项目直接视为向导完成
			WizardStatus:         "completed",
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		newProjectID = project.ID
		log.Printf("创建项目成功: %d", project.ID)

		// 3. 角色（先于大纲/关系，后续步骤都依赖名称映射）
		charMapping, err := importCharacters(tx, project.ID, doc.Characters)
		if err != nil {
			return err
		}
		statistics["characters"] = len(charMapping)
		log.Printf("导入角色数: %d", len(charMapping))

		// 4. 大纲
		outlineMapping, err := importOutlines(tx, project.ID, doc.Outlines)
		if err != nil {
			return err
		}
		statistics["outlines"] = len(outlineMapping)
		log.Printf("导入大纲数: %d", len(outlineMapping))

		// 5. 章节（用大纲映射重建关联）
		chaptersCount, err := importChapters(tx, project.ID, doc.Chapters, outlineMapping)
		if err != nil {
			return err
		}
		statistics["chapters"] = chaptersCount
		log.Printf("导入章节数: %d", chaptersCount)

		// 6. 关系
		relationshipsCount, err := importRelationships(tx, project.ID, doc.Relationships, charMapping)
		if err != nil {
			return err
		}
		statistics["relationships"] = relationshipsCount
		log.Printf("导入关系数: %d", relationshipsCount)

		// 7. 组织详情（两遍：先建齐所有组织再挂父组织）
		orgMapping, err := importOrganizations(tx, project.ID, doc.Organizations, charMapping)
		if err != nil {
			return err
		}
		statistics["organizations"] = len(orgMapping)
		log.Printf("导入组织数: %d", len(orgMapping))

		// 8. 组织成员
		orgMembersCount, err := importOrganizationMembers(tx, doc.OrganizationMembers, charMapping, orgMapping)
		if err != nil {
			return err
		}
		statistics["organization_members"] = orgMembersCount
		log.Printf("导入组织成员数: %d", orgMembersCount)

		// 9. 写作风格（用户级，同名跳过）
		stylesCount, err := importWritingStyles(tx, project.UserID, doc.WritingStyles)
		if err != nil {
			return err
		}
		statistics["writing_styles"] = stylesCount
		log.Printf("导入写作风格数: %d", stylesCount)

		// 10. 返回 nil 提交整个事务
		return nil
	})

	if err != nil {
		log.Printf("导入项目失败: %v", err)
		return &dto.ImportResult{
			Success:    false,
			Message:    "导入失败: " + err.Error(),
			Statistics: statistics,
			Warnings:   warnings,
		}
	}

	log.Printf("项目导入完成: %d", newProjectID)

	return &dto.ImportResult{
		Success:    true,
		ProjectID:  newProjectID,
		Message:    "项目导入成功",
		Statistics: statistics,
		Warnings:   warnings,
	}
}

// importCharacters 创建角色并返回 名称 -> 新ID 的映射
// Create 即时拿到主键，后续关系/组织步骤才有得查
func importCharacters(tx *gorm.DB, projectID uint, charactersData []dto.CharacterExportData) (map[string]uint, error) {
	charMapping := map[string]uint{}

	for _, charData := range charactersData {
		character := model.Character{
			ProjectID:           projectID,
			Name:                charData.Name,
			Age:                 charData.Age,
			Gender:              charData.Gender,
			IsOrganization:      charData.IsOrganization,
			RoleType:            charData.RoleType,
			Personality:         charData.Personality,
			Background:          charData.Background,
			Appearance:          charData.Appearance,
			Traits:              datatypes.JSON(charData.Traits),
			OrganizationType:    charData.OrganizationType,
			OrganizationPurpose: charData.OrganizationPurpose,
		}
		if err := tx.Create(&character).Error; err != nil {
			return nil, err
		}
		charMapping[charData.Name] = character.ID
	}

	return charMapping, nil
}

// importOutlines 创建大纲并返回 标题 -> 新ID 的映射
func importOutlines(tx *gorm.DB, projectID uint, outlinesData []dto.OutlineExportData) (map[string]uint, error) {
	outlineMapping := map[string]uint{}

	for _, olData := range outlinesData {
		outline := model.Outline{
			ProjectID:  projectID,
			Title:      olData.Title,
			Content:    olData.Content,
			Structure:  olData.Structure,
			OrderIndex: olData.OrderIndex,
		}
		if err := tx.Create(&outline).Error; err != nil {
			return nil, err
		}
		outlineMapping[olData.Title] = outline.ID
	}

	return outlineMapping, nil
}

// importChapters 大纲标题解析不到时关联留空，章节本身照常创建
func importChapters(tx *gorm.DB, projectID uint, chaptersData []dto.ChapterExportData, outlineMapping map[string]uint) (int, error) {
	count := 0
	for _, chData := range chaptersData {
		var outlineID *uint
		if chData.OutlineTitle != "" {
			if id, ok := outlineMapping[chData.OutlineTitle]; ok {
				outlineID = &id
			}
		}

		chapter := model.Chapter{
			ProjectID:     projectID,
			Title:         chData.Title,
			Content:       chData.Content,
			Summary:       chData.Summary,
			ChapterNumber: chData.ChapterNumber,
			WordCount:     chData.WordCount,
			Status:        strDefault(chData.Status, "draft"),
			OutlineID:     outlineID,
			SubIndex:      chData.SubIndex,
			ExpansionPlan: datatypes.JSON(chData.ExpansionPlan),
		}
		if err := tx.Create(&chapter).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// importRelationships 两端名称都解析成功才创建，否则静默跳过
func importRelationships(tx *gorm.DB, projectID uint, relationshipsData []dto.RelationshipExportData, charMapping map[string]uint) (int, error) {
	count := 0
	for _, relData := range relationshipsData {
		sourceID, okSource := charMapping[relData.SourceName]
		targetID, okTarget := charMapping[relData.TargetName]
		if !okSource || !okTarget {
			continue
		}

		relationship := model.CharacterRelationship{
			ProjectID:        projectID,
			CharacterFromID:  sourceID,
			CharacterToID:    targetID,
			RelationshipName: relData.RelationshipName,
			IntimacyLevel:    intValue(relData.IntimacyLevel, 50),
			Status:           strDefault(relData.Status, "active"),
			Description:      relData.Description,
			StartedAt:        relData.StartedAt,
		}
		if err := tx.Create(&relationship).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// importOrganizations 两遍创建，返回 组织角色名 -> 新组织ID 的映射
// 子组织可能出现在父组织之前，所以父组织引用必须等全部组织建完再解析
func importOrganizations(tx *gorm.DB, projectID uint, organizationsData []dto.OrganizationExportData, charMapping map[string]uint) (map[string]uint, error) {
	orgMapping := map[string]uint{}

	type pendingOrg struct {
		id         uint
		charID     uint
		parentName string
	}

	// 第一遍：创建所有组织（不设置父组织），角色名解析不到的整条跳过
	var pending []pendingOrg
	for _, orgData := range organizationsData {
		charID, ok := charMapping[orgData.CharacterName]
		if !ok {
			continue
		}

		organization := model.Organization{
			ProjectID:   projectID,
			CharacterID: charID,
			PowerLevel:  intValue(orgData.PowerLevel, 50),
			MemberCount: intValue(orgData.MemberCount, 0),
			Location:    orgData.Location,
			Motto:       orgData.Motto,
			Color:       orgData.Color,
		}
		if err := tx.Create(&organization).Error; err != nil {
			return nil, err
		}
		pending = append(pending, pendingOrg{
			id:         organization.ID,
			charID:     charID,
			parentName: orgData.ParentOrgName,
		})
	}

	// 通过角色行反查组织名，建立 名称 -> ID 映射
	for _, org := range pending {
		var char model.Character
		if err := tx.First(&char, org.charID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		orgMapping[char.Name] = org.id
	}

	// 第二遍：挂父组织
	for _, org := range pending {
		if org.parentName == "" {
			continue
		}
		parentID, ok := orgMapping[org.parentName]
		if !ok {
			continue
		}
		if err := tx.Model(&model.Organization{}).
			Where("id = ?", org.id).
			Update("parent_org_id", parentID).Error; err != nil {
			return nil, err
		}
	}

	return orgMapping, nil
}

// importOrganizationMembers 组织名和角色名都解析成功才创建
func importOrganizationMembers(tx *gorm.DB, membersData []dto.OrganizationMemberExportData, charMapping, orgMapping map[string]uint) (int, error) {
	count := 0
	for _, memberData := range membersData {
		orgID, okOrg := orgMapping[memberData.OrganizationName]
		charID, okChar := charMapping[memberData.CharacterName]
		if !okOrg || !okChar {
			continue
		}

		member := model.OrganizationMember{
			OrganizationID: orgID,
			CharacterID:    charID,
			Position:       memberData.Position,
			Rank:           intValue(memberData.Rank, 0),
			Status:         strDefault(memberData.Status, "active"),
			JoinedAt:       memberData.JoinedAt,
			Loyalty:        intValue(memberData.Loyalty, 50),
			Contribution:   intValue(memberData.Contribution, 0),
			Notes:          memberData.Notes,
		}
		if err := tx.Create(&member).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// importWritingStyles 已存在同名风格则跳过（check-then-create，不覆盖不重复）
func importWritingStyles(tx *gorm.DB, userID uint, stylesData []dto.WritingStyleExportData) (int, error) {
	count := 0
	for _, styleData := range stylesData {
		var existing int64
		if err := tx.Model(&model.WritingStyle{}).
			Where("user_id = ? AND name = ?", userID, styleData.Name).
			Count(&existing).Error; err != nil {
			return count, err
		}
		if existing > 0 {
			log.Printf("风格 %s 已存在，跳过导入", styleData.Name)
			continue
		}

		style := model.WritingStyle{
			UserID:        userID,
			Name:          styleData.Name,
			StyleType:     styleData.StyleType,
			PresetID:      styleData.PresetID,
			Description:   styleData.Description,
			PromptContent: styleData.PromptContent,
			OrderIndex:    styleData.OrderIndex,
		}
		if err := tx.Create(&style).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// intValue 指针为空时取默认值
func intValue(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
