package historicopeso

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

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
	Routes(router.Group("/api/historico-peso"), repos.HistoricoPeso)
	return router
}

func TestListByAlunoOrderedNewestFirst(t *testing.T) {
	var gotQuery string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/historico-peso/aluno/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(gotQuery, "aluno_id=eq.3") {
		t.Errorf("expected aluno filter, got query %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "order=data_registro.desc") {
		t.Errorf("history must be newest first, got query %s", gotQuery)
	}
}

func TestCreateValidation(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("store must not be called for an invalid payload")
	})

	cases := []string{
		`{"peso":82.5}`,
		`{"aluno_id":3}`,
		`{"aluno_id":3,"peso":0}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/historico-peso", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 for %s, got %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Por favor, forneça aluno_id e peso") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	}
}

func TestCreate(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":1,"aluno_id":3,"peso":82.5,"data_registro":"2026-01-05T10:00:00Z"}]`))
	})

	body := `{"aluno_id":3,"peso":82.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/historico-peso", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var registro models.RegistroPeso
	if err := json.Unmarshal(w.Body.Bytes(), &registro); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if registro.Peso != 82.5 || registro.AlunoID != 3 {
		t.Errorf("unexpected registro: %+v", registro)
	}
}

func TestDeleteNotFound(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/historico-peso/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Registro de peso não encontrado") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
