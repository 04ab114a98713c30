package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fikifit/fikifit/internal/store"
)

// RegistroPeso is one self-reported body-weight measurement, peso in kg.
type RegistroPeso struct {
	ID           int64     `json:"id"`
	AlunoID      int64     `json:"aluno_id"`
	Peso         float64   `json:"peso"`
	DataRegistro time.Time `json:"data_registro"`
	Observacoes  string    `json:"observacoes,omitempty"`
}

// RegistroPesoCreate carries the settable columns of a new weight entry.
type RegistroPesoCreate struct {
	AlunoID     int64   `json:"aluno_id"`
	Peso        float64 `json:"peso"`
	Observacoes string  `json:"observacoes,omitempty"`
}

// HistoricoPeso wraps the historico_peso table.
type HistoricoPeso struct {
	client *store.Client
}

// Create inserts a new weight entry and returns the stored row.
func (r *HistoricoPeso) Create(ctx context.Context, create RegistroPesoCreate) (*RegistroPeso, error) {
	data, err := r.client.Insert(ctx, "historico_peso", []RegistroPesoCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create registro de peso: %w", err)
	}
	return firstRegistroPeso(data)
}

// GetByID returns one entry or store.ErrNotFound.
func (r *HistoricoPeso) GetByID(ctx context.Context, id int64) (*RegistroPeso, error) {
	data, err := r.client.Select(ctx, "historico_peso", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get registro de peso: %w", err)
	}

	var registros []RegistroPeso
	if err := json.Unmarshal(data, &registros); err != nil {
		return nil, fmt.Errorf("unmarshal historico de peso: %w", err)
	}
	if len(registros) == 0 {
		return nil, store.ErrNotFound
	}
	return &registros[0], nil
}

// List returns all entries, most recent first.
func (r *HistoricoPeso) List(ctx context.Context) ([]RegistroPeso, error) {
	return r.list(ctx, "order=data_registro.desc")
}

// ListByAluno returns one aluno's entries, most recent first.
func (r *HistoricoPeso) ListByAluno(ctx context.Context, alunoID int64) ([]RegistroPeso, error) {
	return r.list(ctx, fmt.Sprintf("aluno_id=eq.%d&order=data_registro.desc", alunoID))
}

func (r *HistoricoPeso) list(ctx context.Context, query string) ([]RegistroPeso, error) {
	data, err := r.client.Select(ctx, "historico_peso", query)
	if err != nil {
		return nil, fmt.Errorf("list historico de peso: %w", err)
	}

	registros := []RegistroPeso{}
	if err := json.Unmarshal(data, &registros); err != nil {
		return nil, fmt.Errorf("unmarshal historico de peso: %w", err)
	}
	return registros, nil
}

// Update merges the given columns over the stored row.
func (r *HistoricoPeso) Update(ctx context.Context, id int64, fields map[string]interface{}) (*RegistroPeso, error) {
	data, err := r.client.Update(ctx, "historico_peso", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update registro de peso: %w", err)
	}
	return firstRegistroPeso(data)
}

// Delete removes the entry.
func (r *HistoricoPeso) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "historico_peso", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete registro de peso: %w", err)
	}
	return nil
}

func firstRegistroPeso(data []byte) (*RegistroPeso, error) {
	var registros []RegistroPeso
	if err := json.Unmarshal(data, &registros); err != nil {
		return nil, fmt.Errorf("unmarshal historico de peso: %w", err)
	}
	if len(registros) == 0 {
		return nil, store.ErrNotFound
	}
	return &registros[0], nil
}
