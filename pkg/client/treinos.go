package client

import (
	"context"
	"fmt"
)

// TreinoInput is the create payload for a treino.
type TreinoInput struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	Nivel       string `json:"nivel,omitempty"`
	Categoria   string `json:"categoria,omitempty"`
	CriadorID   int64  `json:"criador_id"`
	AlunoID     int64  `json:"aluno_id"`
	Observacoes string `json:"observacoes,omitempty"`
}

// ExercicioInput is the create payload for an exercicio.
type ExercicioInput struct {
	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Categoria   string   `json:"categoria,omitempty"`
	Dificuldade string   `json:"dificuldade,omitempty"`
	Series      *int     `json:"series,omitempty"`
	Repeticoes  *int     `json:"repeticoes,omitempty"`
	Duracao     *int     `json:"duracao,omitempty"`
	Carga       *float64 `json:"carga,omitempty"`
	Observacoes string   `json:"observacoes,omitempty"`
	TreinoID    int64    `json:"treino_id,omitempty"`
}

// Treinos returns every active treino.
func (c *Client) Treinos(ctx context.Context) ([]Treino, error) {
	var treinos []Treino
	if err := c.get(ctx, "/api/treinos", &treinos); err != nil {
		return nil, err
	}
	return treinos, nil
}

// Treino returns one treino by id.
func (c *Client) Treino(ctx context.Context, id int64) (*Treino, error) {
	var treino Treino
	if err := c.get(ctx, fmt.Sprintf("/api/treinos/%d", id), &treino); err != nil {
		return nil, err
	}
	return &treino, nil
}

// TreinosDoAluno returns one aluno's active treinos.
func (c *Client) TreinosDoAluno(ctx context.Context, alunoID int64) ([]Treino, error) {
	var treinos []Treino
	if err := c.get(ctx, fmt.Sprintf("/api/treinos/aluno/%d", alunoID), &treinos); err != nil {
		return nil, err
	}
	return treinos, nil
}

// TreinosDoPersonal returns every treino authored by one professor.
func (c *Client) TreinosDoPersonal(ctx context.Context, personalID int64) ([]Treino, error) {
	var treinos []Treino
	if err := c.get(ctx, fmt.Sprintf("/api/treinos/personal/%d", personalID), &treinos); err != nil {
		return nil, err
	}
	return treinos, nil
}

// CreateTreino creates a treino.
func (c *Client) CreateTreino(ctx context.Context, input TreinoInput) (*Treino, error) {
	var treino Treino
	if err := c.post(ctx, "/api/treinos", input, &treino); err != nil {
		return nil, err
	}
	return &treino, nil
}

// UpdateTreino merges fields over one treino.
func (c *Client) UpdateTreino(ctx context.Context, id int64, fields map[string]interface{}) (*Treino, error) {
	var treino Treino
	if err := c.put(ctx, fmt.Sprintf("/api/treinos/%d", id), fields, &treino); err != nil {
		return nil, err
	}
	return &treino, nil
}

// DeleteTreino removes a treino.
func (c *Client) DeleteTreino(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/treinos/%d", id))
}

// ExerciciosDoTreino returns the exercicios of one treino.
func (c *Client) ExerciciosDoTreino(ctx context.Context, treinoID int64) ([]Exercicio, error) {
	var exercicios []Exercicio
	if err := c.get(ctx, fmt.Sprintf("/api/treinos/%d/exercicios", treinoID), &exercicios); err != nil {
		return nil, err
	}
	return exercicios, nil
}

// AddExercicio inserts an exercicio into one treino.
func (c *Client) AddExercicio(ctx context.Context, treinoID int64, input ExercicioInput) (*Exercicio, error) {
	var exercicio Exercicio
	if err := c.post(ctx, fmt.Sprintf("/api/treinos/%d/exercicios", treinoID), input, &exercicio); err != nil {
		return nil, err
	}
	return &exercicio, nil
}
