package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{
			name:         "map",
			code:         http.StatusOK,
			data:         map[string]string{"message": "success"},
			expectedBody: `{"message":"success"}`,
		},
		{
			name:         "empty slice stays an array",
			code:         http.StatusOK,
			data:         []string{},
			expectedBody: `[]`,
		},
		{
			name:         "nil writes no body",
			code:         http.StatusNoContent,
			data:         nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.expectedBody {
				t.Errorf("body = %q, want %q", got, tt.expectedBody)
			}
		})
	}
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		err        error
		wantDetail string
	}{
		{
			name:       "message passes through",
			code:       http.StatusInternalServerError,
			err:        fmt.Errorf("fetch headlines: %w", errors.New("newsapi error (status 429): rate limited")),
			wantDetail: "fetch headlines: newsapi error (status 429): rate limited",
		},
		{
			name:       "secrets masked",
			code:       http.StatusInternalServerError,
			err:        errors.New("summarize article 0: openai api error: Incorrect API key provided: sk-abcdefghijklmnop"),
			wantDetail: "summarize article 0: openai api error: Incorrect API key provided: sk-****",
		},
		{
			name:       "nil error uses status text",
			code:       http.StatusInternalServerError,
			err:        nil,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Detail(w, tt.code, tt.err)

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if len(body) != 1 {
				t.Errorf("body has %d keys, want only detail: %v", len(body), body)
			}
			if body["detail"] != tt.wantDetail {
				t.Errorf("detail = %q, want %q", body["detail"], tt.wantDetail)
			}
		})
	}
}
