package mensagens

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
	Routes(router.Group("/api/mensagens"), repos.Mensagens, repos.Conversas)
	return router
}

func TestListOrderedNewestFirst(t *testing.T) {
	var gotQuery string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/mensagens", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(gotQuery, "order=data_envio.desc") {
		t.Errorf("global listing must be newest first, got query %s", gotQuery)
	}
}

func TestListByConversaOrderedOldestFirst(t *testing.T) {
	var gotQuery string
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/mensagens/conversa/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(gotQuery, "conversa_id=eq.5") {
		t.Errorf("expected conversa filter, got query %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "order=data_envio.asc") {
		t.Errorf("thread messages must be oldest first, got query %s", gotQuery)
	}
	if w.Body.String() != "[]" {
		t.Errorf("empty thread must produce an empty array, got %s", w.Body.String())
	}
}

func TestCreateBumpsUltimaMensagem(t *testing.T) {
	var patchedTable string
	var patched map[string]interface{}
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
		switch {
		case r.Method == http.MethodGet && table == "conversas":
			w.Write([]byte(`[{"id":5,"aluno_id":1,"professor_id":2,"data_inicio":"2026-01-05T10:00:00Z"}]`))
		case r.Method == http.MethodPost && table == "mensagens":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":9,"conversa_id":5,"remetente_id":1,"conteudo":"oi","data_envio":"2026-01-05T10:01:00Z","lida":false}]`))
		case r.Method == http.MethodPatch:
			patchedTable = table
			json.NewDecoder(r.Body).Decode(&patched)
			w.Write([]byte(`[{"id":5,"aluno_id":1,"professor_id":2,"data_inicio":"2026-01-05T10:00:00Z","ultima_mensagem":"2026-01-05T10:01:00Z"}]`))
		}
	})

	body := `{"conversa_id":5,"remetente_id":1,"conteudo":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/mensagens", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if patchedTable != "conversas" {
		t.Errorf("expected ultima_mensagem patch on conversas, got %s", patchedTable)
	}
	if _, ok := patched["ultima_mensagem"]; !ok {
		t.Errorf("expected ultima_mensagem in patch, got %v", patched)
	}
}

func TestCreateUnknownConversa(t *testing.T) {
	var inserts int
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			inserts++
		}
		w.Write([]byte(`[]`))
	})

	body := `{"conversa_id":99,"remetente_id":1,"conteudo":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/mensagens", strings.NewReader(body))
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

func TestCreateValidation(t *testing.T) {
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("store must not be called for an invalid payload")
	})

	cases := []string{
		`{"remetente_id":1,"conteudo":"oi"}`,
		`{"conversa_id":5,"conteudo":"oi"}`,
		`{"conversa_id":5,"remetente_id":1}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/mensagens", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestUpdateMarksLida(t *testing.T) {
	var patched map[string]interface{}
	router := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":9,"conversa_id":5,"remetente_id":1,"conteudo":"oi","data_envio":"2026-01-05T10:01:00Z","lida":false}]`))
		case http.MethodPatch:
			json.NewDecoder(r.Body).Decode(&patched)
			w.Write([]byte(`[{"id":9,"conversa_id":5,"remetente_id":1,"conteudo":"oi","data_envio":"2026-01-05T10:01:00Z","lida":true}]`))
		}
	})

	req := httptest.NewRequest(http.MethodPut, "/api/mensagens/9", strings.NewReader(`{"lida":true}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if patched["lida"] != true {
		t.Errorf("expected lida=true in patch, got %v", patched)
	}

	var mensagem models.Mensagem
	if err := json.Unmarshal(w.Body.Bytes(), &mensagem); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !mensagem.Lida {
		t.Error("expected the returned mensagem to be lida")
	}
}
