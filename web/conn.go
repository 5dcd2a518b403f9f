package web

import (
	"bufio"
	"errors"
	"io"
	"net"

	"github.com/rs/zerolog"
)

// 分发分支名，只用于日志
const (
	branchRoute    = "route"
	branchStatic   = "static"
	branchBuiltin  = "builtin"
	branchResource = "resource"
	branchNotFound = "not_found"
)

// exchange 记录一次请求的处理结果
type exchange struct {
	method string
	path   string
	branch string
	status int
}

// serveConn 处理一个连接：读一行请求行，写一个响应，然后关闭
// 不支持 keep-alive；任何未处理的错误（包括 panic）只记日志，不回响应
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	log := s.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("dropping connection")
		}
	}()

	ex, err := s.handle(conn, conn, log)
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Debug().Msg("connection closed before request line")
			return
		}
		log.Error().Err(err).
			Str("method", ex.method).
			Str("path", ex.path).
			Msg("dropping connection")
		return
	}

	log.Debug().
		Str("method", ex.method).
		Str("path", ex.path).
		Str("branch", ex.branch).
		Int("status", ex.status).
		Msg("request served")
}

// handle 解析请求行并按固定优先级分发：
// 注册路由(GET) → 静态文件 → 内置接口 → 内置资源 → 404 页面
// 只要有一个分支写出了响应就停止
func (s *Server) handle(r io.Reader, w io.Writer, log zerolog.Logger) (exchange, error) {
	var ex exchange

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return ex, err
	}

	method, path, rawQuery, err := parseRequestLine(line)
	if err != nil {
		return ex, err
	}
	if path == "/" {
		path = s.defaultDocument
	}
	ex.method, ex.path = method, path

	respond := func(branch string, status int, contentType string, body []byte) (exchange, error) {
		ex.branch, ex.status = branch, status
		return ex, writeResponse(w, status, contentType, body)
	}

	// 注册路由，只接受 GET
	// 查询串只在这里整体解码，解码失败直接断开连接
	if route, ok := s.router.Resolve(path); ok && method == "GET" {
		req, err := NewRequest(method, path, rawQuery)
		if err != nil {
			return ex, err
		}
		res := NewResponse()
		body, err := route.Handler.Handle(req, res)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("route handler failed")
			return respond(branchRoute, StatusInternalServerError, "text/html", errorBody(StatusInternalServerError))
		}
		return respond(branchRoute, res.Status(), res.ContentType(), []byte(body))
	}

	// 静态文件
	data, err := s.static.Resolve(path)
	switch {
	case err == nil:
		return respond(branchStatic, StatusOK, ContentTypeFor(path), data)
	case !errors.Is(err, ErrNotFound):
		return ex, err
	}

	// 内置接口
	body, contentType, ok, err := s.serveBuiltin(method, path, rawQuery)
	if err != nil {
		return ex, err
	}
	if ok {
		return respond(branchBuiltin, StatusOK, contentType, []byte(body))
	}

	// 内置资源兜底
	data, err = readResource(s.resources, path)
	switch {
	case err == nil:
		return respond(branchResource, StatusOK, ContentTypeFor(path), data)
	case !errors.Is(err, ErrNotFound):
		return ex, err
	}

	// 默认 404 页面，状态码仍是 200，除非开启 strictNotFound
	status := StatusOK
	if s.strictNotFound {
		status = StatusNotFound
	}
	return respond(branchNotFound, status, "text/html", errorBody(StatusNotFound))
}
