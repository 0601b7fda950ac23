package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// Slugify 生成 URL 友好的 slug，非拉丁字符会被转写
func Slugify(s string) string {
	return slug.Make(strings.TrimSpace(s))
}
