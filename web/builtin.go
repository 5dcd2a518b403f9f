package web

// localTimeLayout 本地时间，不带时区，小数秒去掉末尾的 0
const localTimeLayout = "2006-01-02T15:04:05.999999999"

// serveBuiltin 内置的演示接口，排在静态文件之后
// 只解码 name 参数，其它参数即使转义非法也不影响
// 命中时返回 body、内容类型和 true
func (s *Server) serveBuiltin(method, path, rawQuery string) (string, string, bool, error) {
	switch {
	// GET /hello?name=Cristian
	case path == "/hello" && method == "GET":
		name, err := QueryParam(rawQuery, "name")
		if err != nil {
			return "", "", false, err
		}
		return "Hola " + name + " desde GET!", defaultContentType, true, nil

	// POST /hellopost?name=Cristian
	case path == "/hellopost" && method == "POST":
		name, err := QueryParam(rawQuery, "name")
		if err != nil {
			return "", "", false, err
		}
		return "Hola " + name + " desde POST!", defaultContentType, true, nil

	// GET /api/time
	case path == "/api/time" && method == "GET":
		now := s.now().Format(localTimeLayout)
		return `{"time": "` + now + `"}`, "application/json", true, nil
	}
	return "", "", false, nil
}
