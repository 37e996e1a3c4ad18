package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cucinellclark/bvbrc-copilot/pkg/models"
)

func testContext(t *testing.T, header http.Header) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/job/j1/stream", nil)
	for k, vals := range header {
		for _, v := range vals {
			c.Request.Header.Add(k, v)
		}
	}
	return c, w
}

func TestBearerToken(t *testing.T) {
	c, _ := testContext(t, http.Header{"Authorization": []string{"Bearer abc.def"}})
	assert.Equal(t, "abc.def", bearerToken(c))

	c, _ = testContext(t, http.Header{"Authorization": []string{"bearer xyz"}})
	assert.Equal(t, "xyz", bearerToken(c))

	c, _ = testContext(t, http.Header{"Authorization": []string{"Basic dXNlcg=="}})
	assert.Empty(t, bearerToken(c))

	c, _ = testContext(t, nil)
	assert.Empty(t, bearerToken(c))
}

func TestRequestUser_HeaderPriority(t *testing.T) {
	c, _ := testContext(t, http.Header{
		"X-Forwarded-User":  []string{"alice"},
		"X-Forwarded-Email": []string{"alice@example.org"},
	})
	assert.Equal(t, "alice", requestUser(c))

	c, _ = testContext(t, http.Header{"X-Forwarded-Email": []string{"bob@example.org"}})
	assert.Equal(t, "bob@example.org", requestUser(c))
}

func TestResumeCursor(t *testing.T) {
	c, _ := testContext(t, http.Header{"Last-Event-Id": []string{"42"}})
	assert.Equal(t, int64(42), resumeCursor(c))

	c, _ = testContext(t, nil)
	c.Request.URL.RawQuery = "after=7"
	assert.Equal(t, int64(7), resumeCursor(c))

	c, _ = testContext(t, http.Header{"Last-Event-Id": []string{"not-a-number"}})
	assert.Equal(t, int64(0), resumeCursor(c))

	c, _ = testContext(t, http.Header{"Last-Event-Id": []string{"-3"}})
	assert.Equal(t, int64(0), resumeCursor(c))
}

func TestSSEStream_Format(t *testing.T) {
	c, w := testContext(t, nil)
	stream := newSSEStream(c)
	stream.send("tool_selected", 5, map[string]any{"tool": "x"})
	stream.comment("heartbeat")

	body := w.Body.String()
	assert.Equal(t, "text/event-stream; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no", w.Header().Get("X-Accel-Buffering"))

	assert.True(t, strings.HasPrefix(body, ": connected\n\n"))
	assert.Contains(t, body, "id: 5\n")
	assert.Contains(t, body, "event: tool_selected\n")
	assert.Contains(t, body, `data: {"tool":"x"}`)
	assert.Contains(t, body, ": heartbeat\n\n")
}

func TestSendTerminalFromStatus(t *testing.T) {
	s := &Server{}

	tests := []struct {
		status   string
		terminal bool
		contains []string
	}{
		{"completed", true, []string{"event: started", "event: done"}},
		{"failed", true, []string{"event: error", "boom"}},
		{"cancelled", true, []string{"event: cancelled", "event: done", `"cancelled":true`}},
		{"active", false, nil},
		{"waiting", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c, w := testContext(t, nil)
			stream := newSSEStream(c)
			view := &models.JobStatusView{
				Found:  true,
				JobID:  "j1",
				Status: tt.status,
				Error:  "boom",
				Result: map[string]any{"iterations": 2},
			}
			assert.Equal(t, tt.terminal, s.sendTerminalFromStatus(stream, view))
			for _, want := range tt.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestQueryRequestDefaults(t *testing.T) {
	c, _ := testContext(t, http.Header{"Authorization": []string{"Bearer tok"}, "X-Forwarded-User": []string{"alice"}})

	req := &queryRequest{Query: "hi", SessionID: "s1"}
	data := req.jobData(c)

	assert.True(t, data.SaveChat)
	assert.True(t, data.IncludeHistory)
	assert.Equal(t, "alice", data.UserID)
	assert.Equal(t, "tok", data.AuthToken)
	assert.True(t, req.wantStream())

	off := false
	req.Stream = &off
	req.SaveChat = &off
	assert.False(t, req.wantStream())
	assert.False(t, req.jobData(c).SaveChat)
}
