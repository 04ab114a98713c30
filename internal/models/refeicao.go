package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fikifit/fikifit/internal/store"
)

// Refeicao is a meal inside a dieta. Horario is "HH:MM", calorias in kcal.
type Refeicao struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	Horario     string `json:"horario,omitempty"`
	Calorias    *int   `json:"calorias,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	DietaID     int64  `json:"dieta_id"`
}

// RefeicaoCreate carries the settable columns of a new refeicao.
type RefeicaoCreate struct {
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	Horario     string `json:"horario,omitempty"`
	Calorias    *int   `json:"calorias,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	DietaID     int64  `json:"dieta_id"`
}

// Refeicoes wraps the refeicoes table.
type Refeicoes struct {
	client *store.Client
}

// Create inserts a new refeicao and returns the stored row.
func (r *Refeicoes) Create(ctx context.Context, create RefeicaoCreate) (*Refeicao, error) {
	data, err := r.client.Insert(ctx, "refeicoes", []RefeicaoCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create refeicao: %w", err)
	}
	return firstRefeicao(data)
}

// GetByID returns one refeicao or store.ErrNotFound.
func (r *Refeicoes) GetByID(ctx context.Context, id int64) (*Refeicao, error) {
	data, err := r.client.Select(ctx, "refeicoes", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get refeicao: %w", err)
	}

	var refeicoes []Refeicao
	if err := json.Unmarshal(data, &refeicoes); err != nil {
		return nil, fmt.Errorf("unmarshal refeicoes: %w", err)
	}
	if len(refeicoes) == 0 {
		return nil, store.ErrNotFound
	}
	return &refeicoes[0], nil
}

// ListByDieta returns the refeicoes of one dieta.
func (r *Refeicoes) ListByDieta(ctx context.Context, dietaID int64) ([]Refeicao, error) {
	data, err := r.client.Select(ctx, "refeicoes", fmt.Sprintf("dieta_id=eq.%d", dietaID))
	if err != nil {
		return nil, fmt.Errorf("list refeicoes: %w", err)
	}

	refeicoes := []Refeicao{}
	if err := json.Unmarshal(data, &refeicoes); err != nil {
		return nil, fmt.Errorf("unmarshal refeicoes: %w", err)
	}
	return refeicoes, nil
}

// Update merges the given columns over the stored row.
func (r *Refeicoes) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Refeicao, error) {
	data, err := r.client.Update(ctx, "refeicoes", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update refeicao: %w", err)
	}
	return firstRefeicao(data)
}

// Delete removes the refeicao row.
func (r *Refeicoes) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "refeicoes", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete refeicao: %w", err)
	}
	return nil
}

func firstRefeicao(data []byte) (*Refeicao, error) {
	var refeicoes []Refeicao
	if err := json.Unmarshal(data, &refeicoes); err != nil {
		return nil, fmt.Errorf("unmarshal refeicoes: %w", err)
	}
	if len(refeicoes) == 0 {
		return nil, store.ErrNotFound
	}
	return &refeicoes[0], nil
}
