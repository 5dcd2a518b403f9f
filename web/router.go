package web

// Handler 路由处理接口：读取请求、按需修改响应描述，返回 body
// 返回非 nil 的 error 时连接处理器会回 500
type Handler interface {
	Handle(req *Request, res *Response) (string, error)
}

// HandlerFunc 让普通函数满足 Handler
type HandlerFunc func(req *Request, res *Response) (string, error)

func (f HandlerFunc) Handle(req *Request, res *Response) (string, error) {
	return f(req, res)
}

// Route 一条精确路径到处理函数的绑定，不支持通配符和路径参数
type Route struct {
	Path    string
	Handler Handler
}

// Matches 路径完全相等才算匹配
func (r Route) Matches(path string) bool {
	return r.Path == path
}

// Router 按注册顺序保存的路由表
// 只在启动阶段写入，开始服务之后只读，因此不加锁
type Router struct {
	routes []Route
}

// NewRouter 创建一个空路由表
func NewRouter() *Router {
	return &Router{}
}

// Handle 注册路由
// 不检查重复路径：同一路径注册多次时，先注册的那个生效
func (m *Router) Handle(path string, handler Handler) {
	m.routes = append(m.routes, Route{Path: path, Handler: handler})
}

// Resolve 线性扫描，返回第一个匹配的路由
func (m *Router) Resolve(path string) (Route, bool) {
	for _, route := range m.routes {
		if route.Matches(path) {
			return route, true
		}
	}
	return Route{}, false
}

// Routes 返回路由表的副本，按注册顺序
func (m *Router) Routes() []Route {
	routes := make([]Route, len(m.routes))
	copy(routes, m.routes)
	return routes
}
