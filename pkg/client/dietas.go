package client

import (
	"context"
	"fmt"
)

// DietaInput is the create payload for a dieta.
type DietaInput struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	TipoDieta   string `json:"tipo_dieta,omitempty"`
	DataInicio  string `json:"data_inicio"`
	DataFim     string `json:"data_fim,omitempty"`
	CriadorID   int64  `json:"criador_id"`
	AlunoID     int64  `json:"aluno_id"`
	Observacoes string `json:"observacoes,omitempty"`
}

// RefeicaoInput is the create payload for a refeicao.
type RefeicaoInput struct {
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	Horario     string `json:"horario,omitempty"`
	Calorias    *int   `json:"calorias,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
}

// Dietas returns every active dieta.
func (c *Client) Dietas(ctx context.Context) ([]Dieta, error) {
	var dietas []Dieta
	if err := c.get(ctx, "/api/dietas", &dietas); err != nil {
		return nil, err
	}
	return dietas, nil
}

// Dieta returns one dieta by id.
func (c *Client) Dieta(ctx context.Context, id int64) (*Dieta, error) {
	var dieta Dieta
	if err := c.get(ctx, fmt.Sprintf("/api/dietas/%d", id), &dieta); err != nil {
		return nil, err
	}
	return &dieta, nil
}

// DietasDoAluno returns one aluno's active dietas.
func (c *Client) DietasDoAluno(ctx context.Context, alunoID int64) ([]Dieta, error) {
	var dietas []Dieta
	if err := c.get(ctx, fmt.Sprintf("/api/dietas/aluno/%d", alunoID), &dietas); err != nil {
		return nil, err
	}
	return dietas, nil
}

// DietasDoPersonal returns every dieta authored by one professor.
func (c *Client) DietasDoPersonal(ctx context.Context, personalID int64) ([]Dieta, error) {
	var dietas []Dieta
	if err := c.get(ctx, fmt.Sprintf("/api/dietas/personal/%d", personalID), &dietas); err != nil {
		return nil, err
	}
	return dietas, nil
}

// CreateDieta creates a dieta.
func (c *Client) CreateDieta(ctx context.Context, input DietaInput) (*Dieta, error) {
	var dieta Dieta
	if err := c.post(ctx, "/api/dietas", input, &dieta); err != nil {
		return nil, err
	}
	return &dieta, nil
}

// UpdateDieta merges fields over one dieta.
func (c *Client) UpdateDieta(ctx context.Context, id int64, fields map[string]interface{}) (*Dieta, error) {
	var dieta Dieta
	if err := c.put(ctx, fmt.Sprintf("/api/dietas/%d", id), fields, &dieta); err != nil {
		return nil, err
	}
	return &dieta, nil
}

// DeleteDieta removes a dieta.
func (c *Client) DeleteDieta(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/dietas/%d", id))
}

// RefeicoesDaDieta returns the refeicoes of one dieta.
func (c *Client) RefeicoesDaDieta(ctx context.Context, dietaID int64) ([]Refeicao, error) {
	var refeicoes []Refeicao
	if err := c.get(ctx, fmt.Sprintf("/api/dietas/%d/refeicoes", dietaID), &refeicoes); err != nil {
		return nil, err
	}
	return refeicoes, nil
}

// AddRefeicao inserts a refeicao into one dieta.
func (c *Client) AddRefeicao(ctx context.Context, dietaID int64, input RefeicaoInput) (*Refeicao, error) {
	var refeicao Refeicao
	if err := c.post(ctx, fmt.Sprintf("/api/dietas/%d/refeicoes", dietaID), input, &refeicao); err != nil {
		return nil, err
	}
	return &refeicao, nil
}

// UpdateRefeicao merges fields over one refeicao.
func (c *Client) UpdateRefeicao(ctx context.Context, id int64, fields map[string]interface{}) (*Refeicao, error) {
	var refeicao Refeicao
	if err := c.put(ctx, fmt.Sprintf("/api/refeicoes/%d", id), fields, &refeicao); err != nil {
		return nil, err
	}
	return &refeicao, nil
}

// DeleteRefeicao removes a refeicao.
func (c *Client) DeleteRefeicao(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/refeicoes/%d", id))
}
