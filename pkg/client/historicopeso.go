package client

import (
	"context"
	"fmt"
)

// RegistroPesoInput is the create payload for a weight entry.
type RegistroPesoInput struct {
	AlunoID     int64   `json:"aluno_id"`
	Peso        float64 `json:"peso"`
	Observacoes string  `json:"observacoes,omitempty"`
}

// HistoricoPeso returns every weight entry, most recent first.
func (c *Client) HistoricoPeso(ctx context.Context) ([]RegistroPeso, error) {
	var registros []RegistroPeso
	if err := c.get(ctx, "/api/historico-peso", &registros); err != nil {
		return nil, err
	}
	return registros, nil
}

// HistoricoPesoDoAluno returns one aluno's weight history, most recent
// first. The first entry is the current weight.
func (c *Client) HistoricoPesoDoAluno(ctx context.Context, alunoID int64) ([]RegistroPeso, error) {
	var registros []RegistroPeso
	if err := c.get(ctx, fmt.Sprintf("/api/historico-peso/aluno/%d", alunoID), &registros); err != nil {
		return nil, err
	}
	return registros, nil
}

// RegisterPeso records a new weight entry.
func (c *Client) RegisterPeso(ctx context.Context, input RegistroPesoInput) (*RegistroPeso, error) {
	var registro RegistroPeso
	if err := c.post(ctx, "/api/historico-peso", input, &registro); err != nil {
		return nil, err
	}
	return &registro, nil
}

// UpdateRegistroPeso merges fields over one weight entry.
func (c *Client) UpdateRegistroPeso(ctx context.Context, id int64, fields map[string]interface{}) (*RegistroPeso, error) {
	var registro RegistroPeso
	if err := c.put(ctx, fmt.Sprintf("/api/historico-peso/%d", id), fields, &registro); err != nil {
		return nil, err
	}
	return &registro, nil
}

// DeleteRegistroPeso removes a weight entry.
func (c *Client) DeleteRegistroPeso(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/historico-peso/%d", id))
}
