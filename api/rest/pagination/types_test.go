package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDefaultParams(t *testing.T) {
	cases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero limit falls back to default", 0, 0, 20, 0},
		{"negative limit falls back to default", -5, 0, 20, 0},
		{"limit above max is clamped", 500, 0, 100, 0},
		{"negative offset is zeroed", 10, -3, 10, 0},
		{"valid values pass through", 25, 50, 25, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParams(tc.limit, tc.offset, 20, 100)

			if params.Limit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", params.Limit, tc.wantLimit)
			}

			if params.Offset != tc.wantOffset {
				t.Errorf("offset = %d, want %d", params.Offset, tc.wantOffset)
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Limit: 20, Offset: 0}, 45)

	if !meta.HasMore {
		t.Error("expected has_more with 45 total and first page of 20")
	}

	meta = NewMeta(Params{Limit: 20, Offset: 40}, 45)

	if meta.HasMore {
		t.Error("expected no more pages at offset 40 of 45")
	}
}

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=30&offset=60", nil)

	params := FromQuery(c, 20, 100)

	if params.Limit != 30 || params.Offset != 60 {
		t.Errorf("unexpected params: %+v", params)
	}
}

func TestFromQueryIgnoresGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=abc&offset=xyz", nil)

	params := FromQuery(c, 20, 100)

	if params.Limit != 20 || params.Offset != 0 {
		t.Errorf("unexpected params: %+v", params)
	}
}
