package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fikifit/fikifit/internal/store"
)

// Exercicio is a movement prescription inside a treino. Carga is in kg,
// duracao in minutes.
type Exercicio struct {
	ID          int64    `json:"id"`
	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Categoria   string   `json:"categoria,omitempty"`
	Dificuldade string   `json:"dificuldade,omitempty"`
	Series      *int     `json:"series,omitempty"`
	Repeticoes  *int     `json:"repeticoes,omitempty"`
	Carga       *float64 `json:"carga,omitempty"`
	Duracao     *int     `json:"duracao,omitempty"`
	Observacoes string   `json:"observacoes,omitempty"`
	TreinoID    int64    `json:"treino_id"`
}

// ExercicioCreate carries the settable columns of a new exercicio.
type ExercicioCreate struct {
	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Categoria   string   `json:"categoria,omitempty"`
	Dificuldade string   `json:"dificuldade,omitempty"`
	Series      *int     `json:"series,omitempty"`
	Repeticoes  *int     `json:"repeticoes,omitempty"`
	Carga       *float64 `json:"carga,omitempty"`
	Duracao     *int     `json:"duracao,omitempty"`
	Observacoes string   `json:"observacoes,omitempty"`
	TreinoID    int64    `json:"treino_id"`
}

// Exercicios wraps the exercicios table.
type Exercicios struct {
	client *store.Client
}

// Create inserts a new exercicio and returns the stored row.
func (r *Exercicios) Create(ctx context.Context, create ExercicioCreate) (*Exercicio, error) {
	data, err := r.client.Insert(ctx, "exercicios", []ExercicioCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create exercicio: %w", err)
	}
	return firstExercicio(data)
}

// GetByID returns one exercicio or store.ErrNotFound.
func (r *Exercicios) GetByID(ctx context.Context, id int64) (*Exercicio, error) {
	data, err := r.client.Select(ctx, "exercicios", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get exercicio: %w", err)
	}

	var exercicios []Exercicio
	if err := json.Unmarshal(data, &exercicios); err != nil {
		return nil, fmt.Errorf("unmarshal exercicios: %w", err)
	}
	if len(exercicios) == 0 {
		return nil, store.ErrNotFound
	}
	return &exercicios[0], nil
}

// List returns all exercicios.
func (r *Exercicios) List(ctx context.Context) ([]Exercicio, error) {
	return r.list(ctx, "")
}

// ListByTreino returns the exercicios of one treino.
func (r *Exercicios) ListByTreino(ctx context.Context, treinoID int64) ([]Exercicio, error) {
	return r.list(ctx, fmt.Sprintf("treino_id=eq.%d", treinoID))
}

func (r *Exercicios) list(ctx context.Context, query string) ([]Exercicio, error) {
	data, err := r.client.Select(ctx, "exercicios", query)
	if err != nil {
		return nil, fmt.Errorf("list exercicios: %w", err)
	}

	exercicios := []Exercicio{}
	if err := json.Unmarshal(data, &exercicios); err != nil {
		return nil, fmt.Errorf("unmarshal exercicios: %w", err)
	}
	return exercicios, nil
}

// Update merges the given columns over the stored row.
func (r *Exercicios) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Exercicio, error) {
	data, err := r.client.Update(ctx, "exercicios", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update exercicio: %w", err)
	}
	return firstExercicio(data)
}

// Delete removes the exercicio row.
func (r *Exercicios) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "exercicios", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete exercicio: %w", err)
	}
	return nil
}

func firstExercicio(data []byte) (*Exercicio, error) {
	var exercicios []Exercicio
	if err := json.Unmarshal(data, &exercicios); err != nil {
		return nil, fmt.Errorf("unmarshal exercicios: %w", err)
	}
	if len(exercicios) == 0 {
		return nil, store.ErrNotFound
	}
	return &exercicios[0], nil
}
