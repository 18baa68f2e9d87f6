package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickbite/internal/models"

	"github.com/alexedwards/scs/v2"
	"github.com/bmizerany/pat"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()
	return &application{
		errorLog:  log.New(io.Discard, "", 0),
		infoLog:   log.New(io.Discard, "", 0),
		session:   scs.New(),
		db:        &models.MongoDB{},
		uploadDir: t.TempDir(),
	}
}

// authedRouter mounts a single handler behind a session that already
// carries a seller id, so validation paths behind login can be exercised.
func authedRouter(app *application, method, pattern string, h http.HandlerFunc) http.Handler {
	mux := pat.New()
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.session.Put(r.Context(), "sellerID", primitive.NewObjectID().Hex())
		h(w, r)
	})
	switch method {
	case http.MethodGet:
		mux.Get(pattern, wrapped)
	case http.MethodDelete:
		mux.Del(pattern, wrapped)
	default:
		mux.Post(pattern, wrapped)
	}
	return app.session.LoadAndSave(mux)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return resp
}
