package types

type UploadResponse struct {
	Key string `json:"key"` // 数据库中保存的引用
	Url string `json:"url"`
}
