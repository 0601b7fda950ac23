// Package ingredient 把食谱的自由文本配料拆成可选择的行。
//
// 每一行带有基于内容的 Key（行文本 + 同文本出现序号的 xxhash），
// 提交选择时按 Key 解析，配料文本中途被编辑导致行号变化也不会选错行。
package ingredient

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

type Line struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Text  string `json:"text"`
}

// Parse 按换行切分，去掉首尾空白并丢弃空行，剩余行从 0 开始编号
func Parse(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for _, r := range raw {
		t := strings.TrimSpace(r)
		if t == "" {
			continue
		}
		n := seen[t]
		seen[t] = n + 1
		lines = append(lines, Line{
			Index: len(lines),
			Key:   lineKey(t, n),
			Text:  t,
		})
	}
	return lines
}

// Texts 只返回行文本
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// Resolve 把选中的 key 解析为当前文本中的行，未知或重复的 key 放入 missing
func Resolve(lines []Line, keys []string) (found []Line, missing []string) {
	byKey := make(map[string]Line, len(lines))
	for _, l := range lines {
		byKey[l.Key] = l
	}
	used := make(map[string]bool, len(keys))
	for _, k := range keys {
		l, ok := byKey[k]
		if !ok || used[k] {
			missing = append(missing, k)
			continue
		}
		used[k] = true
		found = append(found, l)
	}
	return found, missing
}

func lineKey(text string, occurrence int) string {
	h := xxhash.New()
	_, _ = h.WriteString(text)
	_, _ = h.WriteString("#")
	_, _ = h.WriteString(strconv.Itoa(occurrence))
	return strconv.FormatUint(h.Sum64(), 16)
}
