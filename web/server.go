// Package web 基于原始 TCP 的极简 HTTP/1.1 框架：每个连接只处理一行请求行
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDocument 请求 "/" 时改写成的路径
const DefaultDocument = "/index.html"

// Server 保存一个进程内的全部路由状态：路由表、静态文件根目录、内置资源
// 必须在 Serve 之前完成注册，Serve 开始后再注册会 panic
type Server struct {
	addr            string
	router          *Router
	static          *StaticResolver
	resources       fs.FS
	defaultDocument string
	strictNotFound  bool
	logger          zerolog.Logger
	now             func() time.Time

	serving atomic.Bool
}

// Option 配置 Server
type Option func(*Server)

// WithAddr 监听地址，默认 ":8080"
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithResources 静态文件和兜底资源都从这个文件系统读取
func WithResources(fsys fs.FS) Option {
	return func(s *Server) { s.resources = fsys }
}

// WithDefaultDocument 设置 "/" 改写的目标
func WithDefaultDocument(path string) Option {
	return func(s *Server) { s.defaultDocument = path }
}

// WithStrictNotFound 为 true 时兜底分支返回真正的 404 状态码，body 不变
func WithStrictNotFound(strict bool) Option {
	return func(s *Server) { s.strictNotFound = strict }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithClock 替换 /api/time 使用的时钟
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New 创建 Server
func New(opts ...Option) *Server {
	s := &Server{
		addr:            ":8080",
		router:          NewRouter(),
		defaultDocument: DefaultDocument,
		logger:          zerolog.Nop(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.static = NewStaticResolver(s.resources, DefaultStaticRoot)
	return s
}

// Addr 返回配置的监听地址
func (s *Server) Addr() string {
	return s.addr
}

// Get 注册一个 GET 路由
func (s *Server) Get(path string, handler HandlerFunc) {
	s.Handle(path, handler)
}

// Handle 注册路由，不检查重复
func (s *Server) Handle(path string, handler Handler) {
	s.mustNotServe("route " + path)
	s.router.Handle(path, handler)
}

// StaticFiles 设置静态文件根目录
func (s *Server) StaticFiles(root string) {
	s.mustNotServe("static root " + root)
	s.static.SetRoot(root)
	s.logger.Info().Str("root", root).Msg("static files configured")
}

// StaticRoot 当前的静态文件根目录
func (s *Server) StaticRoot() string {
	return s.static.Root()
}

// Routes 按注册顺序返回路由表
func (s *Server) Routes() []Route {
	return s.router.Routes()
}

func (s *Server) mustNotServe(what string) {
	if s.serving.Load() {
		panic(fmt.Sprintf("web: %s registered after server started", what))
	}
}

// ListenAndServe 绑定 TCP 端口并开始服务，直到 ctx 取消
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve 在 ln 上接受连接，每个连接一个 goroutine，不限数量
// ctx 取消时关闭监听器并返回 nil；已经在处理的连接各自结束
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.serving.Store(true)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		ln.Close()
	}()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info().Msg("listener closed, no longer accepting connections")
				return nil
			}
			s.logger.Error().Err(err).Msg("accept failed")
			continue
		}
		go s.serveConn(conn)
	}
}
