package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/escuelaing/webframework/web"
)

// registerRoutes 注册演示应用的所有路由
// 必须在 Serve 之前调用
func registerRoutes(srv *web.Server) {
	// /hello?name=Cristian
	srv.Get("/hello", helloHandler)
	// /pi
	srv.Get("/pi", piHandler)
	// /time
	srv.Get("/time", timeHandler)
	// /greet?name=Cristian&lang=es
	srv.Get("/greet", greetHandler)
	// /calc?op=add&a=5&b=3
	srv.Get("/calc", calcHandler)
}

func helloHandler(req *web.Request, res *web.Response) (string, error) {
	name := req.Value("name")
	if name == "" {
		name = "World"
	}
	return "Hello " + name + "!", nil
}

func piHandler(req *web.Request, res *web.Response) (string, error) {
	return strconv.FormatFloat(math.Pi, 'f', -1, 64), nil
}

func timeHandler(req *web.Request, res *web.Response) (string, error) {
	res.SetContentType("application/json")
	now := time.Now().Format("2006-01-02T15:04:05.999999999")
	return `{"time": "` + now + `", "message": "Current server time"}`, nil
}

// 语言代码到问候语，未知语言用英文
var greetings = map[string]string{
	"es": "Hola",
	"fr": "Bonjour",
	"de": "Hallo",
}

func greetHandler(req *web.Request, res *web.Response) (string, error) {
	name := req.Value("name")
	if name == "" {
		name = "Friend"
	}
	greeting, ok := greetings[strings.ToLower(req.Value("lang"))]
	if !ok {
		greeting = "Hello"
	}
	return greeting + " " + name + "! Welcome to the web framework.", nil
}

// calcHandler 先解析两个操作数，再看运算符
// 除零、未知运算符、非法数字都返回 400 和纯文本错误
func calcHandler(req *web.Request, res *web.Response) (string, error) {
	op := req.Value("op")
	a, errA := strconv.ParseFloat(strings.TrimSpace(req.Value("a")), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(req.Value("b")), 64)
	if errA != nil || errB != nil {
		res.SetStatus(web.StatusBadRequest)
		return "Error: Invalid number format", nil
	}

	var result float64
	switch op {
	case "add":
		result = a + b
	case "sub":
		result = a - b
	case "mul":
		result = a * b
	case "div":
		if b == 0 {
			res.SetStatus(web.StatusBadRequest)
			return "Error: Division by zero", nil
		}
		result = a / b
	default:
		res.SetStatus(web.StatusBadRequest)
		return "Error: Unknown operation", nil
	}

	res.SetContentType("application/json")
	return `{"result": ` + formatNumber(result) +
		`, "operation": "` + op +
		`", "operands": [` + formatNumber(a) + `, ` + formatNumber(b) + `]}`, nil
}

// formatNumber 整数值也保留 ".0"，例如 8 → "8.0"
// 始终用普通小数表示，不输出指数形式：1e7 → "10000000.0"，1e-4 → "0.0001"
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
