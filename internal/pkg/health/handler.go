package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adhiwira/kapten/internal/utils"
)

// BuildInfo describes the running binary, reported on /ping
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// buildInfoFromEnv assembles build metadata, preferring values stamped
// into the environment by the deploy pipeline.
func buildInfoFromEnv(serviceName string) BuildInfo {
	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		BuildTime:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	} else {
		info.Hostname = "unknown"
	}

	if version := os.Getenv("VERSION"); version != "" {
		info.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		info.BuildTime = buildTime
	}

	return info
}

// NewPingHandler creates a handler reporting build metadata in the
// standard response envelope
func NewPingHandler(serviceName string) echo.HandlerFunc {
	info := buildInfoFromEnv(serviceName)

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return utils.SuccessResponse(c, http.StatusOK, "pong", resp)
	}
}

// RegisterHealthEndpoints registers the liveness probes. The /health group
// with per-dependency checks is registered by RegisterEnhancedHealthEndpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/ping", NewPingHandler(serviceName))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
