package services

import (
	"strings"

	"github.com/beego/beego/v2/core/logs"
)

var logLevels = map[string]int{
	"debug":   logs.LevelDebug,
	"info":    logs.LevelInformational,
	"warn":    logs.LevelWarning,
	"warning": logs.LevelWarning,
	"error":   logs.LevelError,
}

// ConfigureLogging règle le niveau du journal beego; un niveau inconnu garde info.
func ConfigureLogging(level string) int {
	lvl, ok := logLevels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		lvl = logs.LevelInformational
	}
	logs.SetLevel(lvl)
	logs.EnableFuncCallDepth(true)
	return lvl
}
