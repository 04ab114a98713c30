package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

func newRouter(t *testing.T, fake http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := store.NewClient(store.Config{URL: srv.URL, AnonKey: "test-key"})
	if err != nil {
		t.Fatalf("store client: %v", err)
	}
	repos := models.New(client)

	router := gin.New()
	Routes(router.Group("/api/users"), repos.Users)
	return router
}

func TestListStripsPasswordHashes(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Ana","email":"ana@example.com","password":"$2a$10$hash","user_type":"aluno"}]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "$2a$10$hash") {
		t.Error("password hash leaked into the list response")
	}

	var users []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(users) != 1 || users[0]["name"] != "Ana" {
		t.Errorf("unexpected list: %v", users)
	}
}

func TestGetNotFound(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Usuário não encontrado") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetInvalidID(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("store must not be called for a non-numeric id")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ID inválido") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestListByTypeRejectsUnknownRole(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("store must not be called for an invalid user type")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/type/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Tipo de usuário inválido") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestListByTypeFiltersQuery(t *testing.T) {
	var gotQuery string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/type/professor", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(gotQuery, "user_type=eq.professor") {
		t.Errorf("expected user_type filter, got query %s", gotQuery)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected empty array, got %s", w.Body.String())
	}
}

func TestUpdateStripsImmutableFields(t *testing.T) {
	var patched map[string]interface{}
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":1,"name":"Ana","email":"ana@example.com","user_type":"aluno"}]`))
		case http.MethodPatch:
			json.NewDecoder(r.Body).Decode(&patched)
			w.Write([]byte(`[{"id":1,"name":"Nova Ana","email":"ana@example.com","user_type":"aluno"}]`))
		}
	})

	body := `{"name":"Nova Ana","email":"hacker@example.com","password":"direct-write","id":99}`
	req := httptest.NewRequest(http.MethodPut, "/api/users/update/1", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if _, ok := patched["email"]; ok {
		t.Error("email must not be updatable")
	}
	if _, ok := patched["password"]; ok {
		t.Error("password must not be directly updatable")
	}
	if _, ok := patched["id"]; ok {
		t.Error("id must not be updatable")
	}
	if patched["name"] != "Nova Ana" {
		t.Errorf("expected name update to pass through, got %v", patched)
	}
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	var patched map[string]interface{}
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":1,"name":"Ana","email":"ana@example.com","user_type":"aluno"}]`))
		case http.MethodPatch:
			json.NewDecoder(r.Body).Decode(&patched)
			w.Write([]byte(`[{"id":1,"name":"Ana","email":"ana@example.com","user_type":"aluno"}]`))
		}
	})

	body := `{"newPassword":"fresh-secret"}`
	req := httptest.NewRequest(http.MethodPut, "/api/users/update/1", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if _, ok := patched["newPassword"]; ok {
		t.Error("newPassword must not reach the store verbatim")
	}

	hash, _ := patched["password"].(string)
	if hash == "" || hash == "fresh-secret" {
		t.Fatalf("expected a bcrypt hash in the patch, got %q", hash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("fresh-secret")); err != nil {
		t.Errorf("patched hash does not match the new password: %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodPut, "/api/users/update/42", strings.NewReader(`{"name":"x"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Ana","email":"ana@example.com","user_type":"aluno"}]`))
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Usuário deletado com sucesso") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
