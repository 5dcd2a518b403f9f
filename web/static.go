package web

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DefaultStaticRoot 静态文件的默认根目录
const DefaultStaticRoot = "/webroot"

// ErrNotFound 资源不存在（包括目录和非法路径）
var ErrNotFound = errors.New("web: resource not found")

// StaticResolver 把请求路径拼到根目录后面，从资源文件系统中读取
type StaticResolver struct {
	fsys fs.FS
	root string
}

// NewStaticResolver fsys 为 nil 时所有查找都返回 ErrNotFound
func NewStaticResolver(fsys fs.FS, root string) *StaticResolver {
	return &StaticResolver{fsys: fsys, root: root}
}

func (s *StaticResolver) SetRoot(root string) { s.root = root }
func (s *StaticResolver) Root() string        { return s.root }

// Resolve 读取 root+path 的全部内容
// 文件不存在返回 ErrNotFound，其它读取错误原样向上返回
func (s *StaticResolver) Resolve(path string) ([]byte, error) {
	return readResource(s.fsys, s.root+path)
}

// readResource 从 fsys 读取 name，name 可以带前导 '/'
func readResource(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, ErrNotFound
	}
	name = strings.TrimPrefix(name, "/")
	if name == "" || !fs.ValidPath(name) {
		return nil, ErrNotFound
	}

	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
