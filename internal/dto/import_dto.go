package dto

// ImportValidationResult 导入前校验结果（只读检查，不落库）
type ImportValidationResult struct {
	Valid       bool           `json:"valid"`
	Version     string         `json:"version"`
	ProjectName string         `json:"project_name"`
	Statistics  map[string]int `json:"statistics"`
	Errors      []string       `json:"errors"`
	Warnings    []string       `json:"warnings"`
}

// ImportResult 导入结果
// 失败时 Statistics 保留回滚前累计到的计数，仅用于展示
type ImportResult struct {
	Success    bool           `json:"success"`
	ProjectID  uint           `json:"project_id,omitempty"`
	Message    string         `json:"message"`
	Statistics map[string]int `json:"statistics"`
	Warnings   []string       `json:"warnings"`
}
