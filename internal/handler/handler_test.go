package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"NovelForge/internal/data"
	"NovelForge/internal/dto"
	"NovelForge/internal/model"
	"NovelForge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *data.Data) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, data.Migrate(db))

	d := &data.Data{DB: db}

	projectHandler := NewProjectHandler(service.NewImportExportService(d))
	templateHandler := NewTemplateHandler(service.NewPromptService(d))

	r := gin.New()
	api := r.Group("/api/v1")
	{
		projects := api.Group("/projects")
		{
			projects.GET("/:id/export", projectHandler.Export)
			projects.POST("/import/validate", projectHandler.ValidateImport)
			projects.POST("/import", projectHandler.Import)
		}
		templates := api.Group("/templates")
		{
			templates.GET("/system", templateHandler.ListSystem)
			templates.GET("/system/:key", templateHandler.GetSystem)
			templates.POST("/render", templateHandler.Render)
		}
	}
	return r, d
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportEndpoint(t *testing.T) {
	r, d := newTestRouter(t)

	user := model.User{Username: "writer"}
	require.NoError(t, d.DB.Create(&user).Error)
	project := model.Project{UserID: user.ID, Title: "长夜余烬", Status: "writing"}
	require.NoError(t, d.DB.Create(&project).Error)

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/1/export", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.ProjectExportData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, service.SupportedVersion, resp.Data.Version)
	assert.Equal(t, "长夜余烬", resp.Data.Project.Title)

	// 不存在的项目
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/999/export", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 非法 ID
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/abc/export", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportEndpoints(t *testing.T) {
	r, d := newTestRouter(t)

	user := model.User{Username: "importer"}
	require.NoError(t, d.DB.Create(&user).Error)

	doc := dto.ProjectExportData{
		Version: service.SupportedVersion,
		Project: &dto.ProjectData{Title: "长夜余烬"},
		Characters: []dto.CharacterExportData{
			{Name: "沈青崖"},
		},
	}

	// 校验接口不落库
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/import/validate", doc, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var validateResp struct {
		Data dto.ImportValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &validateResp))
	assert.True(t, validateResp.Data.Valid)
	var projects int64
	require.NoError(t, d.DB.Model(&model.Project{}).Count(&projects).Error)
	assert.Zero(t, projects)

	// 未带用户头
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/import", doc, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 正常导入
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/import", doc, map[string]string{"X-User-Id": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	var importResp struct {
		Data dto.ImportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &importResp))
	assert.True(t, importResp.Data.Success)
	assert.NotZero(t, importResp.Data.ProjectID)

	// 无效文档返回 400
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/import", dto.ProjectExportData{},
		map[string]string{"X-User-Id": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTemplateEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/templates/system", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []dto.TemplateInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.NotEmpty(t, listResp.Data)

	w = doJSON(t, r, http.MethodGet, "/api/v1/templates/system/"+service.KeyWorldBuilding, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/templates/system/NO_SUCH_TEMPLATE", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 渲染成功
	w = doJSON(t, r, http.MethodPost, "/api/v1/templates/render", dto.RenderTemplateReq{
		TemplateKey: service.KeyInspirationTitleUser,
		Params:      map[string]any{"initial_idea": "修仙但没有灵气"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var renderResp struct {
		Data dto.RenderTemplateResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &renderResp))
	assert.Contains(t, renderResp.Data.Prompt, "修仙但没有灵气")

	// 缺参数是调用方错误
	w = doJSON(t, r, http.MethodPost, "/api/v1/templates/render", dto.RenderTemplateReq{
		TemplateKey: service.KeyInspirationTitleUser,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
