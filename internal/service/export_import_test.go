package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"NovelForge/internal/data"
	"NovelForge/internal/dto"
	"NovelForge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// seedProject 造一个带全量关联数据的项目，返回 (用户ID, 项目ID)
func seedProject(t *testing.T, d *data.Data) (uint, uint) {
	t.Helper()
	db := d.DB

	user := model.User{Username: "writer"}
	require.NoError(t, db.Create(&user).Error)

	project := model.Project{
		UserID:               user.ID,
		Title:                "长夜余烬",
		Description:          "末法时代的修行故事",
		Theme:                "向死而生",
		Genre:                "玄幻",
		TargetWords:          2000000,
		CurrentWords:         5200,
		Status:               "writing",
		WorldTimePeriod:      "灵气枯竭后的第三百年",
		WorldLocation:        "北境十三州",
		NarrativePerspective: "第三人称",
		OutlineMode:          "one-to-many",
	}
	require.NoError(t, db.Create(&project).Error)

	outline := model.Outline{ProjectID: project.ID, Title: "第一卷 残灯", OrderIndex: 1, Structure: "起"}
	require.NoError(t, db.Create(&outline).Error)

	ch1 := model.Chapter{
		ProjectID:     project.ID,
		Title:         "初雪",
		Content:       "雪落在山门前。",
		ChapterNumber: 1,
		WordCount:     3200,
		Status:        "completed",
		OutlineID:     &outline.ID,
		ExpansionPlan: datatypes.JSON(`{"scenes":["山门","大殿"]}`),
	}
	require.NoError(t, db.Create(&ch1).Error)
	ch2 := model.Chapter{ProjectID: project.ID, Title: "夜行", ChapterNumber: 2, Status: "draft"}
	require.NoError(t, db.Create(&ch2).Error)

	hero := model.Character{ProjectID: project.ID, Name: "沈青崖", Age: 19, RoleType: "protagonist",
		Traits: datatypes.JSON(`["隐忍","剑修"]`)}
	require.NoError(t, db.Create(&hero).Error)
	rival := model.Character{ProjectID: project.ID, Name: "顾长风", RoleType: "antagonist"}
	require.NoError(t, db.Create(&rival).Error)
	sectChar := model.Character{ProjectID: project.ID, Name: "天枢阁", IsOrganization: true, OrganizationType: "门派"}
	require.NoError(t, db.Create(&sectChar).Error)
	parentChar := model.Character{ProjectID: project.ID, Name: "玄天宗", IsOrganization: true, OrganizationType: "门派"}
	require.NoError(t, db.Create(&parentChar).Error)

	// 亲密度存 0，导出端应当回落到 50
	rel := model.CharacterRelationship{
		ProjectID:        project.ID,
		CharacterFromID:  hero.ID,
		CharacterToID:    rival.ID,
		RelationshipName: "宿敌",
		IntimacyLevel:    0,
	}
	require.NoError(t, db.Create(&rel).Error)

	parentOrg := model.Organization{ProjectID: project.ID, CharacterID: parentChar.ID, PowerLevel: 90, Location: "北境"}
	require.NoError(t, db.Create(&parentOrg).Error)
	childOrg := model.Organization{ProjectID: project.ID, CharacterID: sectChar.ID, ParentOrgID: &parentOrg.ID, Motto: "藏锋"}
	require.NoError(t, db.Create(&childOrg).Error)

	member := model.OrganizationMember{OrganizationID: childOrg.ID, CharacterID: hero.ID, Position: "执事", Loyalty: 80}
	require.NoError(t, db.Create(&member).Error)

	style := model.WritingStyle{UserID: user.ID, Name: "冷峻白描", StyleType: "custom", PromptContent: "少用形容词。"}
	require.NoError(t, db.Create(&style).Error)

	history := model.GenerationHistory{
		ProjectID: project.ID, ChapterID: &ch1.ID,
		Prompt: "写第一章", GeneratedContent: "雪落在山门前。",
		Model: "glm-4", TokensUsed: 812, GenerationTime: 6.3,
	}
	require.NoError(t, db.Create(&history).Error)

	return user.ID, project.ID
}

func TestExportProject(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)
	_, projectID := seedProject(t, d)

	doc, err := svc.ExportProject(context.Background(), projectID, true, true)
	require.NoError(t, err)

	assert.Equal(t, SupportedVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportTime)
	require.NotNil(t, doc.Project)
	assert.Equal(t, "长夜余烬", doc.Project.Title)
	assert.Equal(t, 5200, doc.Project.CurrentWords)

	require.Len(t, doc.Chapters, 2)
	assert.Equal(t, "初雪", doc.Chapters[0].Title)
	assert.Equal(t, "第一卷 残灯", doc.Chapters[0].OutlineTitle)
	assert.JSONEq(t, `{"scenes":["山门","大殿"]}`, string(doc.Chapters[0].ExpansionPlan))
	assert.Empty(t, doc.Chapters[1].OutlineTitle)

	require.Len(t, doc.Characters, 4)
	require.Len(t, doc.Outlines, 1)

	require.Len(t, doc.Relationships, 1)
	assert.Equal(t, "沈青崖", doc.Relationships[0].SourceName)
	assert.Equal(t, "顾长风", doc.Relationships[0].TargetName)
	require.NotNil(t, doc.Relationships[0].IntimacyLevel)
	assert.Equal(t, 50, *doc.Relationships[0].IntimacyLevel, "存库的 0 导出时回落默认值")
	assert.Equal(t, "active", doc.Relationships[0].Status)

	require.Len(t, doc.Organizations, 2)
	orgsByName := map[string]dto.OrganizationExportData{}
	for _, org := range doc.Organizations {
		orgsByName[org.CharacterName] = org
	}
	assert.Equal(t, "玄天宗", orgsByName["天枢阁"].ParentOrgName)
	assert.Empty(t, orgsByName["玄天宗"].ParentOrgName)
	assert.Equal(t, 50, *orgsByName["天枢阁"].PowerLevel)
	assert.Equal(t, 90, *orgsByName["玄天宗"].PowerLevel)

	require.Len(t, doc.OrganizationMembers, 1)
	assert.Equal(t, "天枢阁", doc.OrganizationMembers[0].OrganizationName)
	assert.Equal(t, "沈青崖", doc.OrganizationMembers[0].CharacterName)

	require.Len(t, doc.WritingStyles, 1)
	require.Len(t, doc.GenerationHistory, 1)
	assert.Equal(t, "初雪", doc.GenerationHistory[0].ChapterTitle)
}

func TestExportProjectOptionalSections(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)
	_, projectID := seedProject(t, d)

	doc, err := svc.ExportProject(context.Background(), projectID, false, false)
	require.NoError(t, err)

	assert.Empty(t, doc.GenerationHistory)
	assert.Empty(t, doc.WritingStyles)
	// 其余集合不受开关影响
	assert.Len(t, doc.Chapters, 2)
}

func TestExportProjectNotFound(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)

	_, err := svc.ExportProject(context.Background(), 9999, false, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestExportDropsDanglingRelationship(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)
	_, projectID := seedProject(t, d)

	// 指向不存在角色的关系：导出时丢弃而不是报错
	bad := model.CharacterRelationship{ProjectID: projectID, CharacterFromID: 98765, CharacterToID: 98766}
	require.NoError(t, d.DB.Create(&bad).Error)

	doc, err := svc.ExportProject(context.Background(), projectID, false, true)
	require.NoError(t, err)
	assert.Len(t, doc.Relationships, 1)
}

func TestGenerationHistoryCapAndOrder(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)
	_, projectID := seedProject(t, d)

	require.NoError(t, d.DB.Where("project_id = ?", projectID).Delete(&model.GenerationHistory{}).Error)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		h := model.GenerationHistory{
			ProjectID:  projectID,
			TokensUsed: i,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, d.DB.Create(&h).Error)
	}

	doc, err := svc.ExportProject(context.Background(), projectID, true, false)
	require.NoError(t, err)

	require.Len(t, doc.GenerationHistory, 100)
	assert.Equal(t, 119, doc.GenerationHistory[0].TokensUsed, "最新的排在最前")
	assert.Equal(t, 20, doc.GenerationHistory[99].TokensUsed, "最旧的 20 条被截掉")
}

func TestValidateImportData(t *testing.T) {
	t.Run("完整文档", func(t *testing.T) {
		doc := &dto.ProjectExportData{
			Version: SupportedVersion,
			Project: &dto.ProjectData{Title: "长夜余烬"},
			Chapters: []dto.ChapterExportData{
				{Title: "初雪", ChapterNumber: 1},
			},
			Characters: []dto.CharacterExportData{{Name: "沈青崖"}},
		}
		result := ValidateImportData(doc)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, "长夜余烬", result.ProjectName)
		assert.Equal(t, 1, result.Statistics["chapters"])
	})

	t.Run("缺少版本和项目", func(t *testing.T) {
		result := ValidateImportData(&dto.ProjectExportData{})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "缺少版本信息")
		assert.Contains(t, result.Errors, "缺少项目信息")
		assert.Equal(t, "未知项目", result.ProjectName)
		// 统计无论是否有效都要给出
		assert.Equal(t, 0, result.Statistics["characters"])
	})

	t.Run("标题为空", func(t *testing.T) {
		result := ValidateImportData(&dto.ProjectExportData{
			Version: SupportedVersion,
			Project: &dto.ProjectData{},
		})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "项目标题不能为空")
		// 占位名只给 project 块整体缺失的情况，标题为空如实回显
		assert.Equal(t, "", result.ProjectName)
	})

	t.Run("版本不匹配只是警告", func(t *testing.T) {
		result := ValidateImportData(&dto.ProjectExportData{
			Version: "0.9.0",
			Project: &dto.ProjectData{Title: "旧版导出"},
		})
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})
}

func TestImportExportRoundTrip(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)
	_, projectID := seedProject(t, d)

	doc, err := svc.ExportProject(context.Background(), projectID, true, true)
	require.NoError(t, err)

	importer := model.User{Username: "importer"}
	require.NoError(t, d.DB.Create(&importer).Error)

	result := svc.ImportProject(context.Background(), doc, importer.ID)
	require.True(t, result.Success, result.Message)
	require.NotZero(t, result.ProjectID)
	assert.NotEqual(t, projectID, result.ProjectID, "导入总是创建新项目")

	var newProject model.Project
	require.NoError(t, d.DB.First(&newProject, result.ProjectID).Error)
	assert.Equal(t, importer.ID, newProject.UserID)
	assert.Equal(t, "长夜余烬", newProject.Title)
	assert.Equal(t, 5200, newProject.CurrentWords)
	assert.Equal(t, 4, newProject.WizardStep)
	assert.Equal(t, "completed", newProject.WizardStatus)

	// 章节-大纲按标题重建关联
	var ch model.Chapter
	require.NoError(t, d.DB.Where("project_id = ? AND title = ?", newProject.ID, "初雪").First(&ch).Error)
	require.NotNil(t, ch.OutlineID)
	var ol model.Outline
	require.NoError(t, d.DB.First(&ol, *ch.OutlineID).Error)
	assert.Equal(t, newProject.ID, ol.ProjectID)
	assert.Equal(t, "第一卷 残灯", ol.Title)

	// 关系按角色名重建
	var newHero, newRival model.Character
	require.NoError(t, d.DB.Where("project_id = ? AND name = ?", newProject.ID, "沈青崖").First(&newHero).Error)
	require.NoError(t, d.DB.Where("project_id = ? AND name = ?", newProject.ID, "顾长风").First(&newRival).Error)
	var newRel model.CharacterRelationship
	require.NoError(t, d.DB.Where("project_id = ?", newProject.ID).First(&newRel).Error)
	assert.Equal(t, newHero.ID, newRel.CharacterFromID)
	assert.Equal(t, newRival.ID, newRel.CharacterToID)
	assert.Equal(t, 50, newRel.IntimacyLevel)

	// 组织树按名称重建
	var newSectChar model.Character
	require.NoError(t, d.DB.Where("project_id = ? AND name = ?", newProject.ID, "天枢阁").First(&newSectChar).Error)
	var newChild model.Organization
	require.NoError(t, d.DB.Where("project_id = ? AND character_id = ?", newProject.ID, newSectChar.ID).First(&newChild).Error)
	require.NotNil(t, newChild.ParentOrgID)
	var newParent model.Organization
	require.NoError(t, d.DB.First(&newParent, *newChild.ParentOrgID).Error)
	assert.Equal(t, newProject.ID, newParent.ProjectID)

	// 成员挂到新组织
	var members int64
	require.NoError(t, d.DB.Model(&model.OrganizationMember{}).
		Where("organization_id = ?", newChild.ID).Count(&members).Error)
	assert.EqualValues(t, 1, members)

	// 风格归属导入用户
	assert.Equal(t, 1, result.Statistics["writing_styles"])
	var styles int64
	require.NoError(t, d.DB.Model(&model.WritingStyle{}).
		Where("user_id = ?", importer.ID).Count(&styles).Error)
	assert.EqualValues(t, 1, styles)

	// 生成历史只导出不导入
	var histories int64
	require.NoError(t, d.DB.Model(&model.GenerationHistory{}).
		Where("project_id = ?", newProject.ID).Count(&histories).Error)
	assert.Zero(t, histories)
}

func TestImportSkipsExistingWritingStyles(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)
	_, projectID := seedProject(t, d)

	doc, err := svc.ExportProject(context.Background(), projectID, false, true)
	require.NoError(t, err)

	importer := model.User{Username: "importer"}
	require.NoError(t, d.DB.Create(&importer).Error)

	first := svc.ImportProject(context.Background(), doc, importer.ID)
	require.True(t, first.Success)
	assert.Equal(t, 1, first.Statistics["writing_styles"])

	// 同名风格第二次导入被跳过
	second := svc.ImportProject(context.Background(), doc, importer.ID)
	require.True(t, second.Success)
	assert.Equal(t, 0, second.Statistics["writing_styles"])

	var styles int64
	require.NoError(t, d.DB.Model(&model.WritingStyle{}).
		Where("user_id = ?", importer.ID).Count(&styles).Error)
	assert.EqualValues(t, 1, styles)
}

func TestImportSkipsUnresolvableReferences(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)

	user := model.User{Username: "writer"}
	require.NoError(t, d.DB.Create(&user).Error)

	doc := &dto.ProjectExportData{
		Version: SupportedVersion,
		Project: &dto.ProjectData{Title: "残卷"},
		Characters: []dto.CharacterExportData{
			{Name: "沈青崖"},
		},
		Chapters: []dto.ChapterExportData{
			// 大纲标题解析不到：章节照常创建，关联留空
			{Title: "初雪", ChapterNumber: 1, OutlineTitle: "不存在的大纲"},
		},
		Relationships: []dto.RelationshipExportData{
			// 一端角色缺失：整条跳过
			{SourceName: "沈青崖", TargetName: "不存在的人", RelationshipName: "旧识"},
		},
		OrganizationMembers: []dto.OrganizationMemberExportData{
			{OrganizationName: "不存在的组织", CharacterName: "沈青崖"},
		},
	}

	result := svc.ImportProject(context.Background(), doc, user.ID)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 1, result.Statistics["chapters"])
	assert.Equal(t, 0, result.Statistics["relationships"])
	assert.Equal(t, 0, result.Statistics["organization_members"])

	var ch model.Chapter
	require.NoError(t, d.DB.Where("project_id = ?", result.ProjectID).First(&ch).Error)
	assert.Nil(t, ch.OutlineID)
}

func TestImportResolvesParentBeforeChildOrder(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)

	user := model.User{Username: "writer"}
	require.NoError(t, d.DB.Create(&user).Error)

	// 子组织排在父组织前面，两遍处理仍要挂对
	doc := &dto.ProjectExportData{
		Version: SupportedVersion,
		Project: &dto.ProjectData{Title: "宗门志"},
		Characters: []dto.CharacterExportData{
			{Name: "丙堂", IsOrganization: true},
			{Name: "乙院", IsOrganization: true},
			{Name: "甲宗", IsOrganization: true},
		},
		Organizations: []dto.OrganizationExportData{
			{CharacterName: "丙堂", ParentOrgName: "乙院"},
			{CharacterName: "乙院", ParentOrgName: "甲宗"},
			{CharacterName: "甲宗"},
		},
	}

	result := svc.ImportProject(context.Background(), doc, user.ID)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 3, result.Statistics["organizations"])

	parentOf := func(name string) *uint {
		var char model.Character
		require.NoError(t, d.DB.Where("project_id = ? AND name = ?", result.ProjectID, name).First(&char).Error)
		var org model.Organization
		require.NoError(t, d.DB.Where("character_id = ?", char.ID).First(&org).Error)
		return org.ParentOrgID
	}

	assert.Nil(t, parentOf("甲宗"))
	require.NotNil(t, parentOf("乙院"))
	require.NotNil(t, parentOf("丙堂"))
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)

	result := svc.ImportProject(context.Background(), &dto.ProjectExportData{}, 1)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "数据验证失败")

	var projects int64
	require.NoError(t, d.DB.Model(&model.Project{}).Count(&projects).Error)
	assert.Zero(t, projects)
}

func TestImportRollsBackOnFailure(t *testing.T) {
	d := newTestData(t)
	svc := NewImportExportService(d)

	user := model.User{Username: "writer"}
	require.NoError(t, d.DB.Create(&user).Error)

	// 删掉组织表，让第 7 步必然失败
	require.NoError(t, d.DB.Migrator().DropTable(&model.Organization{}))

	doc := &dto.ProjectExportData{
		Version: SupportedVersion,
		Project: &dto.ProjectData{Title: "半途而废"},
		Characters: []dto.CharacterExportData{
			{Name: "天枢阁", IsOrganization: true},
		},
		Organizations: []dto.OrganizationExportData{
			{CharacterName: "天枢阁"},
		},
	}

	result := svc.ImportProject(context.Background(), doc, user.ID)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "导入失败")

	// 前面步骤写入的项目和角色必须一并回滚
	var projects, characters int64
	require.NoError(t, d.DB.Model(&model.Project{}).Count(&projects).Error)
	require.NoError(t, d.DB.Model(&model.Character{}).Count(&characters).Error)
	assert.Zero(t, projects)
	assert.Zero(t, characters)
}
