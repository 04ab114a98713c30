package client

import (
	"context"
	"fmt"
)

// Exercicios returns every exercicio.
func (c *Client) Exercicios(ctx context.Context) ([]Exercicio, error) {
	var exercicios []Exercicio
	if err := c.get(ctx, "/api/exercicios", &exercicios); err != nil {
		return nil, err
	}
	return exercicios, nil
}

// Exercicio returns one exercicio by id.
func (c *Client) Exercicio(ctx context.Context, id int64) (*Exercicio, error) {
	var exercicio Exercicio
	if err := c.get(ctx, fmt.Sprintf("/api/exercicios/%d", id), &exercicio); err != nil {
		return nil, err
	}
	return &exercicio, nil
}

// CreateExercicio creates a standalone exercicio; input must carry
// TreinoID.
func (c *Client) CreateExercicio(ctx context.Context, input ExercicioInput) (*Exercicio, error) {
	var exercicio Exercicio
	if err := c.post(ctx, "/api/exercicios", input, &exercicio); err != nil {
		return nil, err
	}
	return &exercicio, nil
}

// UpdateExercicio merges fields over one exercicio.
func (c *Client) UpdateExercicio(ctx context.Context, id int64, fields map[string]interface{}) (*Exercicio, error) {
	var exercicio Exercicio
	if err := c.put(ctx, fmt.Sprintf("/api/exercicios/%d", id), fields, &exercicio); err != nil {
		return nil, err
	}
	return &exercicio, nil
}

// DeleteExercicio removes an exercicio.
func (c *Client) DeleteExercicio(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/exercicios/%d", id))
}
