package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fikifit/fikifit/internal/store"
)

// Dieta is a nutrition plan authored by a professor for one aluno.
// DataInicio and DataFim are date columns, carried as "YYYY-MM-DD".
type Dieta struct {
	ID          int64  `json:"id"`
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	TipoDieta   string `json:"tipo_dieta,omitempty"`
	DataInicio  string `json:"data_inicio"`
	DataFim     string `json:"data_fim,omitempty"`
	CriadorID   int64  `json:"criador_id"`
	AlunoID     int64  `json:"aluno_id"`
	Ativo       bool   `json:"ativo"`
	Observacoes string `json:"observacoes,omitempty"`
}

// DietaCreate carries the settable columns of a new dieta.
type DietaCreate struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	TipoDieta   string `json:"tipo_dieta,omitempty"`
	DataInicio  string `json:"data_inicio"`
	DataFim     string `json:"data_fim,omitempty"`
	CriadorID   int64  `json:"criador_id"`
	AlunoID     int64  `json:"aluno_id"`
	Observacoes string `json:"observacoes,omitempty"`
}

// Dietas wraps the dietas table.
type Dietas struct {
	client *store.Client
}

// Create inserts a new dieta and returns the stored row.
func (r *Dietas) Create(ctx context.Context, create DietaCreate) (*Dieta, error) {
	data, err := r.client.Insert(ctx, "dietas", []DietaCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create dieta: %w", err)
	}
	return firstDieta(data)
}

// GetByID returns one dieta or store.ErrNotFound.
func (r *Dietas) GetByID(ctx context.Context, id int64) (*Dieta, error) {
	data, err := r.client.Select(ctx, "dietas", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get dieta: %w", err)
	}

	var dietas []Dieta
	if err := json.Unmarshal(data, &dietas); err != nil {
		return nil, fmt.Errorf("unmarshal dietas: %w", err)
	}
	if len(dietas) == 0 {
		return nil, store.ErrNotFound
	}
	return &dietas[0], nil
}

// List returns all active dietas.
func (r *Dietas) List(ctx context.Context) ([]Dieta, error) {
	return r.list(ctx, "ativo=eq.true")
}

// ListByAluno returns the active dietas assigned to one aluno.
func (r *Dietas) ListByAluno(ctx context.Context, alunoID int64) ([]Dieta, error) {
	return r.list(ctx, fmt.Sprintf("aluno_id=eq.%d&ativo=eq.true", alunoID))
}

// ListByCriador returns every dieta authored by one professor.
func (r *Dietas) ListByCriador(ctx context.Context, criadorID int64) ([]Dieta, error) {
	return r.list(ctx, fmt.Sprintf("criador_id=eq.%d", criadorID))
}

func (r *Dietas) list(ctx context.Context, query string) ([]Dieta, error) {
	data, err := r.client.Select(ctx, "dietas", query)
	if err != nil {
		return nil, fmt.Errorf("list dietas: %w", err)
	}

	dietas := []Dieta{}
	if err := json.Unmarshal(data, &dietas); err != nil {
		return nil, fmt.Errorf("unmarshal dietas: %w", err)
	}
	return dietas, nil
}

// Update merges the given columns over the stored row.
func (r *Dietas) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Dieta, error) {
	data, err := r.client.Update(ctx, "dietas", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update dieta: %w", err)
	}
	return firstDieta(data)
}

// Delete removes the dieta row.
func (r *Dietas) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "dietas", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete dieta: %w", err)
	}
	return nil
}

// ListRefeicoes returns the refeicoes that belong to one dieta.
func (r *Dietas) ListRefeicoes(ctx context.Context, dietaID int64) ([]Refeicao, error) {
	data, err := r.client.Select(ctx, "refeicoes", fmt.Sprintf("dieta_id=eq.%d", dietaID))
	if err != nil {
		return nil, fmt.Errorf("list refeicoes da dieta: %w", err)
	}

	refeicoes := []Refeicao{}
	if err := json.Unmarshal(data, &refeicoes); err != nil {
		return nil, fmt.Errorf("unmarshal refeicoes: %w", err)
	}
	return refeicoes, nil
}

// AddRefeicao inserts a refeicao bound to the given dieta.
func (r *Dietas) AddRefeicao(ctx context.Context, dietaID int64, create RefeicaoCreate) (*Refeicao, error) {
	create.DietaID = dietaID
	data, err := r.client.Insert(ctx, "refeicoes", []RefeicaoCreate{create})
	if err != nil {
		return nil, fmt.Errorf("add refeicao a dieta: %w", err)
	}
	return firstRefeicao(data)
}

func firstDieta(data []byte) (*Dieta, error) {
	var dietas []Dieta
	if err := json.Unmarshal(data, &dietas); err != nil {
		return nil, fmt.Errorf("unmarshal dietas: %w", err)
	}
	if len(dietas) == 0 {
		return nil, store.ErrNotFound
	}
	return &dietas[0], nil
}
