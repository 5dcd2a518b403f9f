package web

import (
	"bytes"
	"io"
	"strconv"
)

// CRLF \r\n 是两个字符组成的序列：
// \r：carriage return，回车
// \n：line feed，换行
const CRLF = "\r\n"

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

const defaultContentType = "text/plain"

// Response 是处理函数可修改的响应描述：状态码和内容类型
// 生命周期只有一次请求
type Response struct {
	status      int
	contentType string
}

// NewResponse 返回默认 200 text/plain 的响应
func NewResponse() *Response {
	return &Response{
		status:      StatusOK,
		contentType: defaultContentType,
	}
}

func (r *Response) SetStatus(code int)       { r.status = code }
func (r *Response) Status() int              { return r.status }
func (r *Response) SetContentType(ct string) { r.contentType = ct }
func (r *Response) ContentType() string      { return r.contentType }

// StatusText 返回状态码对应的短语，表外的一律为 "Unknown"
func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}

// writeResponse 拼好状态行、Content-Type、Content-Length 和 body，一次写出
// 除这两个头以外不输出任何其它头部
func writeResponse(w io.Writer, status int, contentType string, body []byte) error {
	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 " + strconv.Itoa(status) + " " + StatusText(status) + CRLF)
	buf.WriteString("Content-Type: " + contentType + CRLF)
	buf.WriteString("Content-Length: " + strconv.Itoa(len(body)) + CRLF)
	buf.WriteString(CRLF)
	buf.Write(body)
	_, err := w.Write(buf.Bytes())
	return err
}

// errorBody 生成 <h1>500 Internal Server Error</h1> 这样的 HTML 错误页
func errorBody(status int) []byte {
	return []byte("<h1>" + strconv.Itoa(status) + " " + StatusText(status) + "</h1>")
}
