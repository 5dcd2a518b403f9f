package web

import "strings"

// mimeTypes 按扩展名匹配，顺序即优先级
var mimeTypes = []struct {
	ext         string
	contentType string
}{
	{".html", "text/html; charset=utf-8"},
	{".css", "text/css; charset=utf-8"},
	{".js", "application/javascript; charset=utf-8"},
	{".json", "application/json"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".png", "image/png"},
	{".ico", "image/x-icon"},
}

// ContentTypeFor 根据路径后缀返回 MIME 类型，未知的一律当作二进制流
func ContentTypeFor(path string) string {
	for _, m := range mimeTypes {
		if strings.HasSuffix(path, m.ext) {
			return m.contentType
		}
	}
	return "application/octet-stream"
}
