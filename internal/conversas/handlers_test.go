package conversas

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
	Routes(router.Group("/api/conversas"), repos.Conversas, repos.Mensagens)
	return router
}

func TestCreatePairConflict(t *testing.T) {
	var inserts int
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if strings.Contains(r.URL.RawQuery, "aluno_id=eq.1") &&
				strings.Contains(r.URL.RawQuery, "professor_id=eq.2") {
				w.Write([]byte(`[{"id":5,"aluno_id":1,"professor_id":2,"data_inicio":"2026-01-05T10:00:00Z"}]`))
				return
			}
			w.Write([]byte(`[]`))
		case http.MethodPost:
			inserts++
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":6,"aluno_id":2,"professor_id":1,"data_inicio":"2026-01-05T10:00:00Z"}]`))
		}
	})

	// Existing (aluno=1, prof=2) pair is a conflict.
	req := httptest.NewRequest(http.MethodPost, "/api/conversas", strings.NewReader(`{"aluno_id":1,"professor_id":2}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Já existe uma conversa entre esses usuários") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if inserts != 0 {
		t.Errorf("conflicting pair must not reach the store, got %d inserts", inserts)
	}

	// The reversed pair is a different pair and succeeds.
	req = httptest.NewRequest(http.MethodPost, "/api/conversas", strings.NewReader(`{"aluno_id":2,"professor_id":1}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for reversed pair, got %d: %s", w.Code, w.Body.String())
	}
	if inserts != 1 {
		t.Errorf("expected 1 insert, got %d", inserts)
	}
}

func TestCreateValidation(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("store must not be called for an invalid payload")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/conversas", strings.NewReader(`{"aluno_id":1}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Por favor, forneça aluno_id e professor_id") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestDeleteNotFound(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/conversas/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Conversa não encontrada") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestListMensagensOrderedOldestFirst(t *testing.T) {
	var mensagensQuery string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/conversas") {
			w.Write([]byte(`[{"id":5,"aluno_id":1,"professor_id":2,"data_inicio":"2026-01-05T10:00:00Z"}]`))
			return
		}
		mensagensQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/conversas/5/mensagens", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(mensagensQuery, "conversa_id=eq.5") {
		t.Errorf("expected conversa filter, got query %s", mensagensQuery)
	}
	if !strings.Contains(mensagensQuery, "order=data_envio.asc") {
		t.Errorf("thread messages must be oldest first, got query %s", mensagensQuery)
	}
}

func TestAddMensagemBindsConversa(t *testing.T) {
	var inserted []map[string]interface{}
	var patchedTable string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
		switch {
		case r.Method == http.MethodGet && table == "conversas":
			w.Write([]byte(`[{"id":5,"aluno_id":1,"professor_id":2,"data_inicio":"2026-01-05T10:00:00Z"}]`))
		case r.Method == http.MethodPost && table == "mensagens":
			json.NewDecoder(r.Body).Decode(&inserted)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":9,"conversa_id":5,"remetente_id":1,"conteudo":"oi","data_envio":"2026-01-05T10:01:00Z","lida":false}]`))
		case r.Method == http.MethodPatch:
			patchedTable = table
			w.Write([]byte(`[{"id":5,"aluno_id":1,"professor_id":2,"data_inicio":"2026-01-05T10:00:00Z","ultima_mensagem":"2026-01-05T10:01:00Z"}]`))
		}
	})

	// conversa_id comes from the path, not the payload.
	body := `{"remetente_id":1,"conteudo":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/conversas/5/mensagens", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(inserted) != 1 || inserted[0]["conversa_id"] != float64(5) {
		t.Errorf("expected conversa_id from the path, got %v", inserted)
	}
	if patchedTable != "conversas" {
		t.Errorf("expected ultima_mensagem bump on conversas, got %s", patchedTable)
	}
}

func TestAddMensagemUnknownConversa(t *testing.T) {
	var inserts int
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			inserts++
		}
		w.Write([]byte(`[]`))
	})

	body := `{"remetente_id":1,"conteudo":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/conversas/99/mensagens", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Conversa não encontrada") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if inserts != 0 {
		t.Errorf("message for an unknown conversa must not be stored, got %d inserts", inserts)
	}
}

func TestListByAluno(t *testing.T) {
	var gotQuery string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/conversas/aluno/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(gotQuery, "aluno_id=eq.3") {
		t.Errorf("expected aluno filter, got query %s", gotQuery)
	}
}
