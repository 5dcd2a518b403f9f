package web

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedRequest 请求行无法解析（缺少 URI、查询串转义非法等）
var ErrMalformedRequest = errors.New("web: malformed request")

// Request 表示一个已解析的请求行（不依赖 net/http）
// 构造之后不可修改，每个连接只创建一次
type Request struct {
	method   string
	path     string
	rawQuery string
	params   map[string]string
}

// NewRequest 根据方法、路径和原始查询串构造 Request
// rawQuery 不含前导的 '?'
func NewRequest(method, path, rawQuery string) (*Request, error) {
	params, err := ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return &Request{
		method:   method,
		path:     path,
		rawQuery: rawQuery,
		params:   params,
	}, nil
}

func (r *Request) Method() string   { return r.method }
func (r *Request) Path() string     { return r.path }
func (r *Request) RawQuery() string { return r.rawQuery }

// Value 返回查询参数的值，不存在时返回空串
func (r *Request) Value(name string) string {
	return r.params[name]
}

// Lookup 返回查询参数以及它是否存在
func (r *Request) Lookup(name string) (string, bool) {
	v, ok := r.params[name]
	return v, ok
}

// ParseQuery 解析 a=1&b=2 形式的查询串
// 键和值都按 UTF-8 做百分号解码，'+' 视为空格；
// 没有 '=' 的片段直接忽略；重复的键以最后一次出现为准
func ParseQuery(rawQuery string) (map[string]string, error) {
	params := make(map[string]string)
	if rawQuery == "" {
		return params, nil
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("%w: query key %q: %v", ErrMalformedRequest, key, err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w: query value %q: %v", ErrMalformedRequest, value, err)
		}
		params[k] = v
	}
	return params, nil
}

// QueryParam 返回第一个键为 key 的参数值，只解码这一对
// 键按原样比较；不存在时返回空串
func QueryParam(rawQuery, key string) (string, error) {
	if rawQuery == "" {
		return "", nil
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		k, value, ok := strings.Cut(pair, "=")
		if !ok || k != key {
			continue
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return "", fmt.Errorf("%w: query value %q: %v", ErrMalformedRequest, value, err)
		}
		return v, nil
	}
	return "", nil
}

// parseRequestLine 把 "METHOD URI VERSION" 拆成 method、path、rawQuery
// 版本号不做校验，URI 以第一个 '?' 分成路径和查询串
func parseRequestLine(line string) (method, path, rawQuery string, err error) {
	line = strings.TrimRight(line, CRLF)
	parts := strings.Split(line, " ")
	if len(parts) < 2 || parts[0] == "" {
		return "", "", "", fmt.Errorf("%w: request line %q", ErrMalformedRequest, line)
	}
	method = parts[0]
	path, rawQuery, _ = strings.Cut(parts[1], "?")
	return method, path, rawQuery, nil
}
