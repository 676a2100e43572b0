package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"NovelForge/internal/data"
	"NovelForge/internal/dto"
	"NovelForge/internal/model"

	"gorm.io/gorm"
)

// placeholderRe 匹配 {identifier} 形式的占位符
// 只认标识符，模板里的 JSON 示例（如 {"title": ...}）不会被误伤
var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// PromptService 提示词模板服务：系统默认模板 + 用户级覆盖 + 参数替换
type PromptService struct {
	Data *data.Data
}

func NewPromptService(d *data.Data) *PromptService {
	return &PromptService{Data: d}
}

// FormatPrompt 严格参数替换：模板里出现的每个占位符都必须在 params 中提供，
// 缺一个立刻报错，绝不输出残缺的提示词
// 特例：params 带 genre 而没带 genre_strategy 时，自动注入类型策略
func FormatPrompt(template string, params map[string]any) (string, error) {
	merged := make(map[string]any, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}

	if _, ok := merged["genre_strategy"]; !ok {
		if genre, ok := merged["genre"]; ok {
			merged["genre_strategy"] = GenreStrategyFor(fmt.Sprintf("%v", genre))
		}
	}

	var missing string
	result := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := merged[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		return fmt.Sprintf("%v", v)
	})

	if missing != "" {
		return "", fmt.Errorf("缺少必需的参数: %s", missing)
	}

	return result, nil
}

// GetTemplate 取模板内容：优先用户自定义（is_active），否则回落到系统默认
func (s *PromptService) GetTemplate(ctx context.Context, templateKey string, userID uint) (string, error) {
	if userID != 0 {
		var custom model.PromptTemplate
		err := s.Data.DB.WithContext(ctx).
			Where("user_id = ? AND template_key = ? AND is_active = ?", userID, templateKey, true).
			First(&custom).Error
		if err == nil {
			log.Printf("✅ 使用用户自定义模板: %s (用户 %d)", templateKey, userID)
			return custom.TemplateContent, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("查询用户模板失败: %v", err)
		}
	}

	if tpl, ok := DefaultTemplate(templateKey); ok {
		log.Printf("使用系统默认模板: %s", templateKey)
		return tpl, nil
	}

	return "", fmt.Errorf("未找到模板: %s", templateKey)
}

// GetTemplateWithFallback 同 GetTemplate，但查询出错时退回系统默认而不是报错
func (s *PromptService) GetTemplateWithFallback(ctx context.Context, templateKey string, userID uint) (string, error) {
	content, err := s.GetTemplate(ctx, templateKey, userID)
	if err == nil {
		return content, nil
	}

	if tpl, ok := DefaultTemplate(templateKey); ok {
		log.Printf("⚠️ 用户模板读取失败，回落到系统默认: %s", templateKey)
		return tpl, nil
	}

	return "", err
}

// RenderTemplate 取模板（含用户覆盖）并完成参数替换
func (s *PromptService) RenderTemplate(ctx context.Context, templateKey string, userID uint, params map[string]any) (string, error) {
	template, err := s.GetTemplate(ctx, templateKey, userID)
	if err != nil {
		return "", err
	}

	return FormatPrompt(template, params)
}

// AllSystemTemplates 返回全部系统模板的目录信息（含模板正文）
func (s *PromptService) AllSystemTemplates() []dto.TemplateInfo {
	infos := make([]dto.TemplateInfo, 0, len(templateCatalog))
	for _, meta := range templateCatalog {
		infos = append(infos, dto.TemplateInfo{
			TemplateKey:  meta.key,
			TemplateName: meta.name,
			Category:     meta.category,
			Description:  meta.description,
			Parameters:   meta.parameters,
			Content:      defaultTemplates[meta.key],
		})
	}
	return infos
}

// SystemTemplate 按键取单条目录信息
func (s *PromptService) SystemTemplate(templateKey string) (*dto.TemplateInfo, error) {
	for _, meta := range templateCatalog {
		if meta.key == templateKey {
			return &dto.TemplateInfo{
				TemplateKey:  meta.key,
				TemplateName: meta.name,
				Category:     meta.category,
				Description:  meta.description,
				Parameters:   meta.parameters,
				Content:      defaultTemplates[meta.key],
			}, nil
		}
	}
	return nil, fmt.Errorf("未找到模板: %s", templateKey)
}

// ApplyStyleToPrompt 把写作风格要求拼接到基础提示词后面
func ApplyStyleToPrompt(basePrompt, stylePrompt string) string {
	if stylePrompt == "" {
		return basePrompt
	}
	return basePrompt + "\n\n" + stylePrompt + "\n\n请直接输出章节正文内容，不要包含章节标题和其他说明文字。"
}
