package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	adapter "github.com/GeovaneMT/LavaCar/internal/logger/adapter/fiber"
	"github.com/GeovaneMT/LavaCar/internal/logger"
)

// accessLogLine mirrors the middleware's json output.
type accessLogLine struct {
	IP            net.IP    `json:"IP"`
	Status        int       `json:"status"`
	XPerformance  float32   `json:"X-Performance"`
	URI           string    `json:"URI"`
	Method        string    `json:"method"`
	Host          string    `json:"host"`
	XForwardedFor string    `json:"X-Forwarded-For"`
	UserAgent     string    `json:"User-Agent"`
	Time          time.Time `json:"time"`
}

func TestNew(t *testing.T) {
	consoleConfig := adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			Console:                  logger.Console{Enabled: true},
		},
	}

	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *accessLogLine
	}{
		{
			name:       "empty config no output at all",
			targetPath: "/",
			want:       nil,
		},
		{
			name:       "get root logs to console json",
			targetPath: "/",
			config:     consoleConfig,
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 200,
				URI:    "/",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "multiple slashes are logged unnormalized",
			targetPath: "//test",
			config:     consoleConfig,
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 404,
				URI:    "//test",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "query string is kept",
			targetPath: "/?test=123",
			config:     consoleConfig,
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 200,
				URI:    "/?test=123",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "multi slash with query string",
			targetPath: "/no_path//?test=123",
			config:     consoleConfig,
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: 404,
				URI:    "/no_path//?test=123",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testMiddlewareHelper(t, tt.targetPath, tt.config)
			assert.NoError(t, err)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			if output == "" {
				t.Error("expected output but got no output")
				return
			}

			var line accessLogLine
			if err = json.Unmarshal([]byte(output), &line); err != nil {
				t.Error(err)
				return
			}

			assert.Equal(t, tt.want.Host, line.Host)
			assert.Equal(t, tt.want.Method, line.Method)
			assert.Equal(t, tt.want.Status, line.Status)
			assert.Equal(t, tt.want.IP, line.IP)
			assert.Equal(t, tt.want.URI, line.URI)
		})
	}
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, error) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapterConfig))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), 100000)
	if err != nil {
		_ = w.Close()
		return "", err
	}

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, err = io.Copy(&buf, r)
		if err != nil {
			return
		}

		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr
	out := <-outC

	return out, err
}
