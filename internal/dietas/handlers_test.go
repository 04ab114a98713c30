package dietas

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
	Routes(router.Group("/api/dietas"), repos.Dietas)
	return router
}

func TestCreateRequiresDataInicio(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("store must not be called for an invalid payload")
	})

	body := `{"titulo":"Cutting","criador_id":1,"aluno_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/dietas", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Por favor, forneça título, data de início, ID do criador e ID do aluno") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestCreatePassesDateStringsThrough(t *testing.T) {
	var inserted []map[string]interface{}
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&inserted)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":4,"titulo":"Cutting","data_inicio":"2026-02-01","criador_id":1,"aluno_id":2,"ativo":true}]`))
	})

	body := `{"titulo":"Cutting","data_inicio":"2026-02-01","data_fim":"2026-04-01","criador_id":1,"aluno_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/dietas", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(inserted) != 1 {
		t.Fatalf("expected 1 inserted row, got %d", len(inserted))
	}
	// Dates travel as plain strings, never reformatted.
	if inserted[0]["data_inicio"] != "2026-02-01" || inserted[0]["data_fim"] != "2026-04-01" {
		t.Errorf("unexpected dates in insert: %v", inserted[0])
	}
}

func TestAddRefeicaoBindsDieta(t *testing.T) {
	var inserted []map[string]interface{}
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":4,"titulo":"Cutting","data_inicio":"2026-02-01","criador_id":1,"aluno_id":2,"ativo":true}]`))
		case http.MethodPost:
			json.NewDecoder(r.Body).Decode(&inserted)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":8,"nome":"Café da manhã","dieta_id":4}]`))
		}
	})

	body := `{"nome":"Café da manhã","horario":"07:30"}`
	req := httptest.NewRequest(http.MethodPost, "/api/dietas/4/refeicoes", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(inserted) != 1 || inserted[0]["dieta_id"] != float64(4) {
		t.Errorf("expected dieta_id from the path, got %v", inserted)
	}
}
