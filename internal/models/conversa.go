package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fikifit/fikifit/internal/store"
)

// Conversa is a persistent thread between one aluno and one professor.
type Conversa struct {
	ID             int64      `json:"id"`
	AlunoID        int64      `json:"aluno_id"`
	ProfessorID    int64      `json:"professor_id"`
	DataInicio     time.Time  `json:"data_inicio"`
	UltimaMensagem *time.Time `json:"ultima_mensagem,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// ConversaCreate carries the settable columns of a new conversa.
type ConversaCreate struct {
	AlunoID     int64 `json:"aluno_id"`
	ProfessorID int64 `json:"professor_id"`
}

// Conversas wraps the conversas table.
type Conversas struct {
	client *store.Client
}

// Create inserts a new conversa and returns the stored row.
func (r *Conversas) Create(ctx context.Context, create ConversaCreate) (*Conversa, error) {
	data, err := r.client.Insert(ctx, "conversas", []ConversaCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create conversa: %w", err)
	}
	return firstConversa(data)
}

// GetByID returns one conversa or store.ErrNotFound.
func (r *Conversas) GetByID(ctx context.Context, id int64) (*Conversa, error) {
	data, err := r.client.Select(ctx, "conversas", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get conversa: %w", err)
	}

	var conversas []Conversa
	if err := json.Unmarshal(data, &conversas); err != nil {
		return nil, fmt.Errorf("unmarshal conversas: %w", err)
	}
	if len(conversas) == 0 {
		return nil, store.ErrNotFound
	}
	return &conversas[0], nil
}

// FindByParticipantes returns the conversa for the ordered (aluno,
// professor) pair, or store.ErrNotFound. The pair is directional: reversed
// ids are a different pair.
func (r *Conversas) FindByParticipantes(ctx context.Context, alunoID, professorID int64) (*Conversa, error) {
	query := fmt.Sprintf("aluno_id=eq.%d&professor_id=eq.%d&limit=1", alunoID, professorID)
	data, err := r.client.Select(ctx, "conversas", query)
	if err != nil {
		return nil, fmt.Errorf("find conversa: %w", err)
	}

	var conversas []Conversa
	if err := json.Unmarshal(data, &conversas); err != nil {
		return nil, fmt.Errorf("unmarshal conversas: %w", err)
	}
	if len(conversas) == 0 {
		return nil, store.ErrNotFound
	}
	return &conversas[0], nil
}

// List returns all conversas.
func (r *Conversas) List(ctx context.Context) ([]Conversa, error) {
	return r.list(ctx, "")
}

// ListByAluno returns the conversas of one aluno.
func (r *Conversas) ListByAluno(ctx context.Context, alunoID int64) ([]Conversa, error) {
	return r.list(ctx, fmt.Sprintf("aluno_id=eq.%d", alunoID))
}

// ListByProfessor returns the conversas of one professor.
func (r *Conversas) ListByProfessor(ctx context.Context, professorID int64) ([]Conversa, error) {
	return r.list(ctx, fmt.Sprintf("professor_id=eq.%d", professorID))
}

func (r *Conversas) list(ctx context.Context, query string) ([]Conversa, error) {
	data, err := r.client.Select(ctx, "conversas", query)
	if err != nil {
		return nil, fmt.Errorf("list conversas: %w", err)
	}

	conversas := []Conversa{}
	if err := json.Unmarshal(data, &conversas); err != nil {
		return nil, fmt.Errorf("unmarshal conversas: %w", err)
	}
	return conversas, nil
}

// Update merges the given columns over the stored row.
func (r *Conversas) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Conversa, error) {
	data, err := r.client.Update(ctx, "conversas", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update conversa: %w", err)
	}
	return firstConversa(data)
}

// Delete removes the conversa row.
func (r *Conversas) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "conversas", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete conversa: %w", err)
	}
	return nil
}

func firstConversa(data []byte) (*Conversa, error) {
	var conversas []Conversa
	if err := json.Unmarshal(data, &conversas); err != nil {
		return nil, fmt.Errorf("unmarshal conversas: %w", err)
	}
	if len(conversas) == 0 {
		return nil, store.ErrNotFound
	}
	return &conversas[0], nil
}
