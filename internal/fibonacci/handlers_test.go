package fibonacci

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"validation-sample/internal/testutil"

	"github.com/go-chi/chi/v5"
)

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		want       Response
	}{
		{name: "default method", target: "/fibonacci/6", wantStatus: http.StatusOK, want: Response{N: 6, Method: "recursive", Result: 8}},
		{name: "iterative", target: "/fibonacci/90?method=iterative", wantStatus: http.StatusOK, want: Response{N: 90, Method: "iterative", Result: 2880067194370816120}},
		{name: "not a number", target: "/fibonacci/six", wantStatus: http.StatusBadRequest},
		{name: "too large", target: "/fibonacci/40", wantStatus: http.StatusBadRequest},
		{name: "unknown method", target: "/fibonacci/6?method=closed-form", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := InitMetrics(); err != nil {
				t.Fatalf("initializing metrics: %v", err)
			}

			r := chi.NewRouter()
			RegisterRoutes(r)

			w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, tc.target, nil), r)
			testutil.CheckResponseCode(t, tc.wantStatus, w.Code)

			if tc.wantStatus != http.StatusOK {
				var body map[string]string
				testutil.DecodeJSONBody(t, w.Body, &body)
				if body["error"] == "" {
					t.Fatal("expected error message in body")
				}
				return
			}

			var got Response
			testutil.DecodeJSONBody(t, w.Body, &got)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
