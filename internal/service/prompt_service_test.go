package service

import (
	"context"
	"strings"
	"testing"

	"NovelForge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreStrategyFor(t *testing.T) {
	assert.Contains(t, GenreStrategyFor("仙侠"), "位面飞升")
	assert.Contains(t, GenreStrategyFor("东方玄幻·热血"), "位面飞升")
	assert.Contains(t, GenreStrategyFor("硬核科幻"), "尺度跃迁")
	assert.Contains(t, GenreStrategyFor("历史权谋"), "推演与势")

	// 命不中不是错误，返回空串
	assert.Empty(t, GenreStrategyFor("田园日常"))
	assert.Empty(t, GenreStrategyFor(""))
}

func TestFormatPrompt(t *testing.T) {
	t.Run("基本替换", func(t *testing.T) {
		out, err := FormatPrompt("书名《{title}》，共{chapter_count}章", map[string]any{
			"title":         "长夜余烬",
			"chapter_count": 12,
		})
		require.NoError(t, err)
		assert.Equal(t, "书名《长夜余烬》，共12章", out)
	})

	t.Run("缺少参数立即报错", func(t *testing.T) {
		_, err := FormatPrompt("主题：{theme}", map[string]any{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "缺少必需的参数: theme")
	})

	t.Run("模板里的JSON示例不受影响", func(t *testing.T) {
		tpl := `返回格式：{"title": "书名", "options": ["a", "b"]}，主题为{theme}`
		out, err := FormatPrompt(tpl, map[string]any{"theme": "救赎"})
		require.NoError(t, err)
		assert.Contains(t, out, `{"title": "书名", "options": ["a", "b"]}`)
		assert.Contains(t, out, "主题为救赎")
	})

	t.Run("带genre时自动注入类型策略", func(t *testing.T) {
		out, err := FormatPrompt("{genre_strategy}\n类型：{genre}", map[string]any{"genre": "仙侠"})
		require.NoError(t, err)
		assert.Contains(t, out, "位面飞升")
	})

	t.Run("显式传入的genre_strategy不被覆盖", func(t *testing.T) {
		out, err := FormatPrompt("{genre_strategy}", map[string]any{
			"genre":          "仙侠",
			"genre_strategy": "自定义策略",
		})
		require.NoError(t, err)
		assert.Equal(t, "自定义策略", out)
	})

	t.Run("不改动调用方的参数表", func(t *testing.T) {
		params := map[string]any{"genre": "仙侠", "genre_strategy_unused": 1}
		_, err := FormatPrompt("{genre}", params)
		require.NoError(t, err)
		_, injected := params["genre_strategy"]
		assert.False(t, injected)
	})
}

func TestGetTemplateUserOverride(t *testing.T) {
	d := newTestData(t)
	svc := NewPromptService(d)
	ctx := context.Background()

	custom := model.PromptTemplate{
		UserID:          7,
		TemplateKey:     KeyWorldBuilding,
		TemplateContent: "自定义世界观模板：{title}",
		IsActive:        true,
	}
	require.NoError(t, d.DB.Create(&custom).Error)

	// 覆盖命中
	content, err := svc.GetTemplate(ctx, KeyWorldBuilding, 7)
	require.NoError(t, err)
	assert.Equal(t, "自定义世界观模板：{title}", content)

	// 其他用户仍然是系统默认
	content, err = svc.GetTemplate(ctx, KeyWorldBuilding, 8)
	require.NoError(t, err)
	assert.Equal(t, defaultTemplates[KeyWorldBuilding], content)

	// 停用后回落系统默认
	require.NoError(t, d.DB.Model(&model.PromptTemplate{}).
		Where("id = ?", custom.ID).Update("is_active", false).Error)
	content, err = svc.GetTemplate(ctx, KeyWorldBuilding, 7)
	require.NoError(t, err)
	assert.Equal(t, defaultTemplates[KeyWorldBuilding], content)

	// 未知键报错
	_, err = svc.GetTemplate(ctx, "NO_SUCH_TEMPLATE", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未找到模板")
}

func TestGetTemplateWithFallback(t *testing.T) {
	d := newTestData(t)
	svc := NewPromptService(d)
	ctx := context.Background()

	// 把覆盖表删掉，让用户模板查询必然报错
	require.NoError(t, d.DB.Migrator().DropTable(&model.PromptTemplate{}))

	_, err := svc.GetTemplate(ctx, KeyWorldBuilding, 7)
	require.Error(t, err, "严格版直接把查询错误抛给调用方")

	// 容错版退回系统默认
	content, err := svc.GetTemplateWithFallback(ctx, KeyWorldBuilding, 7)
	require.NoError(t, err)
	assert.Equal(t, defaultTemplates[KeyWorldBuilding], content)

	// 没有系统默认可退时仍然报错
	_, err = svc.GetTemplateWithFallback(ctx, "NO_SUCH_TEMPLATE", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未找到模板")

	_, err = svc.GetTemplateWithFallback(ctx, "NO_SUCH_TEMPLATE", 7)
	require.Error(t, err)
}

func TestRenderTemplate(t *testing.T) {
	d := newTestData(t)
	svc := NewPromptService(d)
	ctx := context.Background()

	prompt, err := svc.RenderTemplate(ctx, KeyWorldBuilding, 0, map[string]any{
		"title":       "长夜余烬",
		"theme":       "向死而生",
		"genre":       "玄幻",
		"description": "末法时代的修行故事",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "《长夜余烬》")
	assert.Contains(t, prompt, "位面飞升", "genre 命中时策略被注入")
	assert.NotContains(t, prompt, "{title}")

	// 用户覆盖也走同一条渲染链路
	require.NoError(t, d.DB.Create(&model.PromptTemplate{
		UserID:          7,
		TemplateKey:     KeyInspirationTitleUser,
		TemplateContent: "想法是：{initial_idea}",
		IsActive:        true,
	}).Error)
	prompt, err = svc.RenderTemplate(ctx, KeyInspirationTitleUser, 7, map[string]any{
		"initial_idea": "修仙但没有灵气",
	})
	require.NoError(t, err)
	assert.Equal(t, "想法是：修仙但没有灵气", prompt)

	_, err = svc.RenderTemplate(ctx, "NO_SUCH_TEMPLATE", 0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未找到模板")
}

func TestSystemTemplateCatalog(t *testing.T) {
	d := newTestData(t)
	svc := NewPromptService(d)

	infos := svc.AllSystemTemplates()
	require.Len(t, infos, len(defaultTemplates), "目录必须覆盖全部内置模板")
	require.Len(t, infos, 30)

	// 各功能域的模板都要在位，尤其是大纲展开（expansion_plan 数据的来源）
	for _, key := range []string{
		KeyOutlineExpandSingle, KeyOutlineExpandMulti,
		KeyAutoCharacterAnalysis, KeyAutoCharacterGeneration,
		KeyAutoOrgAnalysis, KeyAutoOrgGeneration,
		KeyCareerSystemGeneration,
		KeyMCPWorldBuildingPlanning, KeyMCPCharacterPlanning,
		KeyMCPToolTest, KeyMCPToolTestSystem,
	} {
		_, ok := DefaultTemplate(key)
		assert.True(t, ok, key)
	}

	for _, info := range infos {
		assert.NotEmpty(t, info.TemplateName, info.TemplateKey)
		assert.NotEmpty(t, info.Category, info.TemplateKey)
		assert.NotEmpty(t, info.Content, info.TemplateKey)

		// 声明的每个参数都必须真实出现在模板正文里
		for _, param := range info.Parameters {
			assert.Contains(t, info.Content, "{"+param+"}",
				"模板 %s 声明了参数 %s", info.TemplateKey, param)
		}
	}

	info, err := svc.SystemTemplate(KeyChapterGenerationV2)
	require.NoError(t, err)
	assert.Equal(t, "章节创作", info.Category)

	_, err = svc.SystemTemplate("NO_SUCH_TEMPLATE")
	require.Error(t, err)
}

func TestApplyStyleToPrompt(t *testing.T) {
	base := "写第一章"

	assert.Equal(t, base, ApplyStyleToPrompt(base, ""))

	out := ApplyStyleToPrompt(base, "少用形容词。")
	assert.True(t, strings.HasPrefix(out, base))
	assert.Contains(t, out, "少用形容词。")
	assert.Contains(t, out, "请直接输出章节正文内容")
}
