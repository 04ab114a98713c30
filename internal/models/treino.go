package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fikifit/fikifit/internal/store"
)

// Treino is a training plan authored by a professor for one aluno.
type Treino struct {
	ID              int64      `json:"id"`
	Titulo          string     `json:"titulo"`
	Descricao       string     `json:"descricao,omitempty"`
	Nivel           string     `json:"nivel,omitempty"`
	Categoria       string     `json:"categoria,omitempty"`
	DataCriacao     time.Time  `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao,omitempty"`
	CriadorID       int64      `json:"criador_id"`
	AlunoID         int64      `json:"aluno_id"`
	Ativo           bool       `json:"ativo"`
	Observacoes     string     `json:"observacoes,omitempty"`
}

// TreinoCreate carries the settable columns of a new treino. The store
// assigns id, timestamps and the ativo default.
type TreinoCreate struct {
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	Nivel       string `json:"nivel,omitempty"`
	Categoria   string `json:"categoria,omitempty"`
	CriadorID   int64  `json:"criador_id"`
	AlunoID     int64  `json:"aluno_id"`
	Observacoes string `json:"observacoes,omitempty"`
}

// Treinos wraps the treinos table.
type Treinos struct {
	client *store.Client
}

// Create inserts a new treino and returns the stored row.
func (r *Treinos) Create(ctx context.Context, create TreinoCreate) (*Treino, error) {
	data, err := r.client.Insert(ctx, "treinos", []TreinoCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create treino: %w", err)
	}
	return firstTreino(data)
}

// GetByID returns one treino or store.ErrNotFound.
func (r *Treinos) GetByID(ctx context.Context, id int64) (*Treino, error) {
	data, err := r.client.Select(ctx, "treinos", fmt.Sprintf("id=eq.%d&limit=1", id))
	if err != nil {
		return nil, fmt.Errorf("get treino: %w", err)
	}

	var treinos []Treino
	if err := json.Unmarshal(data, &treinos); err != nil {
		return nil, fmt.Errorf("unmarshal treinos: %w", err)
	}
	if len(treinos) == 0 {
		return nil, store.ErrNotFound
	}
	return &treinos[0], nil
}

// List returns all active treinos.
func (r *Treinos) List(ctx context.Context) ([]Treino, error) {
	return r.list(ctx, "ativo=eq.true")
}

// ListByAluno returns the active treinos assigned to one aluno.
func (r *Treinos) ListByAluno(ctx context.Context, alunoID int64) ([]Treino, error) {
	return r.list(ctx, fmt.Sprintf("aluno_id=eq.%d&ativo=eq.true", alunoID))
}

// ListByCriador returns every treino authored by one professor, active or
// not.
func (r *Treinos) ListByCriador(ctx context.Context, criadorID int64) ([]Treino, error) {
	return r.list(ctx, fmt.Sprintf("criador_id=eq.%d", criadorID))
}

func (r *Treinos) list(ctx context.Context, query string) ([]Treino, error) {
	data, err := r.client.Select(ctx, "treinos", query)
	if err != nil {
		return nil, fmt.Errorf("list treinos: %w", err)
	}

	treinos := []Treino{}
	if err := json.Unmarshal(data, &treinos); err != nil {
		return nil, fmt.Errorf("unmarshal treinos: %w", err)
	}
	return treinos, nil
}

// Update merges the given columns over the stored row.
func (r *Treinos) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Treino, error) {
	data, err := r.client.Update(ctx, "treinos", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update treino: %w", err)
	}
	return firstTreino(data)
}

// Delete removes the treino row.
func (r *Treinos) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "treinos", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete treino: %w", err)
	}
	return nil
}

// ListExercicios returns the exercicios that belong to one treino.
func (r *Treinos) ListExercicios(ctx context.Context, treinoID int64) ([]Exercicio, error) {
	data, err := r.client.Select(ctx, "exercicios", fmt.Sprintf("treino_id=eq.%d", treinoID))
	if err != nil {
		return nil, fmt.Errorf("list exercicios do treino: %w", err)
	}

	exercicios := []Exercicio{}
	if err := json.Unmarshal(data, &exercicios); err != nil {
		return nil, fmt.Errorf("unmarshal exercicios: %w", err)
	}
	return exercicios, nil
}

// AddExercicio inserts an exercicio bound to the given treino.
func (r *Treinos) AddExercicio(ctx context.Context, treinoID int64, create ExercicioCreate) (*Exercicio, error) {
	create.TreinoID = treinoID
	data, err := r.client.Insert(ctx, "exercicios", []ExercicioCreate{create})
	if err != nil {
		return nil, fmt.Errorf("add exercicio ao treino: %w", err)
	}
	return firstExercicio(data)
}

func firstTreino(data []byte) (*Treino, error) {
	var treinos []Treino
	if err := json.Unmarshal(data, &treinos); err != nil {
		return nil, fmt.Errorf("unmarshal treinos: %w", err)
	}
	if len(treinos) == 0 {
		return nil, store.ErrNotFound
	}
	return &treinos[0], nil
}
