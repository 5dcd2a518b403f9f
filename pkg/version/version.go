package version

import (
	"fmt"
	"runtime"
)

var (
	// Version 构建时通过 -ldflags 注入
	Version = "0.1.0"
	// GitCommit 构建时注入
	GitCommit = ""
	// BuildDate 构建时注入
	BuildDate = ""

	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

	AppName     = "webframework"
	Description = "A minimal HTTP/1.1 web framework over raw TCP"
)

// GetVersionInfo 返回多行的版本信息
func GetVersionInfo() string {
	info := fmt.Sprintf("%s version %s", AppName, Version)
	if GitCommit != "" {
		info += fmt.Sprintf("\nGit commit: %s", GitCommit)
	}
	if BuildDate != "" {
		info += fmt.Sprintf("\nBuild date: %s", BuildDate)
	}
	info += fmt.Sprintf("\nGo version: %s", GoVersion)
	info += fmt.Sprintf("\nPlatform: %s", Platform)
	return info
}
