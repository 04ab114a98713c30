package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fikifit/fikifit/internal/store"
)

// Mensagem is one message inside a conversa. TipoUsuario records the
// sender's role at send time.
type Mensagem struct {
	ID          int64     `json:"id"`
	ConversaID  int64     `json:"conversa_id"`
	RemetenteID int64     `json:"remetente_id"`
	Conteudo    string    `json:"conteudo"`
	DataEnvio   time.Time `json:"data_envio"`
	Lida        bool      `json:"lida"`
	TipoUsuario string    `json:"tipo_usuario,omitempty"`
}

// MensagemCreate carries the settable columns of a new mensagem.
type MensagemCreate struct {
	ConversaID  int64  `json:"conversa_id"`
	RemetenteID int64  `json:"remetente_id"`
	Conteudo    string `json:"conteudo"`
	TipoUsuario string `json:"tipo_usuario,omitempty"`
}

// Mensagens wraps the mensagens table.
type Mensagens struct {
	client *store.Client
}

// Create inserts a new mensagem and returns the stored row.
func (r *Mensagens) Create(ctx context.Context, create MensagemCreate) (*Mensagem, error) {
	data, err := r.client.Insert(ctx, "mensagens", []MensagemCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create mensagem: %w", err)
	}
	return firstMensagem(data)
}

// GetByID returns one mensagem or store.ErrNotFound.
func (r *Mensagens) GetByID(ctx context.Context, id int64) (*Mensagem, error) {
	data, err := r.client.Select(ctx, "mensagens", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get mensagem: %w", err)
	}

	var mensagens []Mensagem
	if err := json.Unmarshal(data, &mensagens); err != nil {
		return nil, fmt.Errorf("unmarshal mensagens: %w", err)
	}
	if len(mensagens) == 0 {
		return nil, store.ErrNotFound
	}
	return &mensagens[0], nil
}

// List returns all mensagens, most recent first.
func (r *Mensagens) List(ctx context.Context) ([]Mensagem, error) {
	return r.list(ctx, "order=data_envio.desc")
}

// ListByConversa returns the mensagens of one conversa in display order,
// oldest first.
func (r *Mensagens) ListByConversa(ctx context.Context, conversaID int64) ([]Mensagem, error) {
	return r.list(ctx, fmt.Sprintf("conversa_id=eq.%d&order=data_envio.asc", conversaID))
}

// ListByRemetente returns every mensagem sent by one user.
func (r *Mensagens) ListByRemetente(ctx context.Context, remetenteID int64) ([]Mensagem, error) {
	return r.list(ctx, fmt.Sprintf("remetente_id=eq.%d", remetenteID))
}

func (r *Mensagens) list(ctx context.Context, query string) ([]Mensagem, error) {
	data, err := r.client.Select(ctx, "mensagens", query)
	if err != nil {
		return nil, fmt.Errorf("list mensagens: %w", err)
	}

	mensagens := []Mensagem{}
	if err := json.Unmarshal(data, &mensagens); err != nil {
		return nil, fmt.Errorf("unmarshal mensagens: %w", err)
	}
	return mensagens, nil
}

// Update merges the given columns over the stored row. Used by clients to
// mark messages as lida.
func (r *Mensagens) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Mensagem, error) {
	data, err := r.client.Update(ctx, "mensagens", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update mensagem: %w", err)
	}
	return firstMensagem(data)
}

// Delete removes the mensagem row.
func (r *Mensagens) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "mensagens", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete mensagem: %w", err)
	}
	return nil
}

func firstMensagem(data []byte) (*Mensagem, error) {
	var mensagens []Mensagem
	if err := json.Unmarshal(data, &mensagens); err != nil {
		return nil, fmt.Errorf("unmarshal mensagens: %w", err)
	}
	if len(mensagens) == 0 {
		return nil, store.ErrNotFound
	}
	return &mensagens[0], nil
}
