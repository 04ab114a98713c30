package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fikifit/fikifit/internal/store"
)

// User roles.
const (
	UserTypeAluno     = "aluno"
	UserTypeProfessor = "professor"
)

// User is a row of the users table. Role-specific columns are nullable in
// the store: data_nascimento/altura/objetivo belong to alunos,
// especializacao/cref/descricao/experiencia_anos to professores.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	UserType   string `json:"user_type"`
	Telefone   string `json:"telefone,omitempty"`
	FotoPerfil string `json:"foto_perfil,omitempty"`

	// Campos de aluno
	DataNascimento string   `json:"data_nascimento,omitempty"`
	Altura         *float64 `json:"altura,omitempty"`
	Objetivo       string   `json:"objetivo,omitempty"`

	// Campos de professor
	Especializacao  string `json:"especializacao,omitempty"`
	Cref            string `json:"cref,omitempty"`
	Descricao       string `json:"descricao,omitempty"`
	ExperienciaAnos *int   `json:"experiencia_anos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the user shape returned to clients: never carries the
// password hash.
type PublicUser struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserType   string `json:"user_type"`
	Telefone   string `json:"telefone,omitempty"`
	FotoPerfil string `json:"foto_perfil,omitempty"`

	DataNascimento string   `json:"data_nascimento,omitempty"`
	Altura         *float64 `json:"altura,omitempty"`
	Objetivo       string   `json:"objetivo,omitempty"`

	Especializacao  string `json:"especializacao,omitempty"`
	Cref            string `json:"cref,omitempty"`
	Descricao       string `json:"descricao,omitempty"`
	ExperienciaAnos *int   `json:"experiencia_anos,omitempty"`
}

// Public strips the password hash from a stored row.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		UserType:        u.UserType,
		Telefone:        u.Telefone,
		FotoPerfil:      u.FotoPerfil,
		DataNascimento:  u.DataNascimento,
		Altura:          u.Altura,
		Objetivo:        u.Objetivo,
		Especializacao:  u.Especializacao,
		Cref:            u.Cref,
		Descricao:       u.Descricao,
		ExperienciaAnos: u.ExperienciaAnos,
	}
}

// UserCreate carries the settable columns of a new user. The password must
// already be hashed by the caller.
type UserCreate struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	UserType        string   `json:"user_type"`
	Telefone        string   `json:"telefone,omitempty"`
	FotoPerfil      string   `json:"foto_perfil,omitempty"`
	DataNascimento  string   `json:"data_nascimento,omitempty"`
	Altura          *float64 `json:"altura,omitempty"`
	Objetivo        string   `json:"objetivo,omitempty"`
	Especializacao  string   `json:"especializacao,omitempty"`
	Cref            string   `json:"cref,omitempty"`
	Descricao       string   `json:"descricao,omitempty"`
	ExperienciaAnos *int     `json:"experiencia_anos,omitempty"`
}

// Users wraps the users table.
type Users struct {
	client *store.Client
}

// Create inserts a new user and returns the stored row.
func (r *Users) Create(ctx context.Context, create UserCreate) (*User, error) {
	data, err := r.client.Insert(ctx, "users", []UserCreate{create})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("create user: empty response")
	}
	return &users[0], nil
}

// GetByID returns the user with the given id, or store.ErrNotFound.
func (r *Users) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getOne(ctx, fmt.Sprintf("id=eq.%d&limit=1", id))
}

// GetByEmail returns the user with the given email, or store.ErrNotFound.
func (r *Users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getOne(ctx, "email=eq."+queryEscape(email)+"&limit=1")
}

func (r *Users) getOne(ctx context.Context, query string) (*User, error) {
	data, err := r.client.Select(ctx, "users", query)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	if len(users) == 0 {
		return nil, store.ErrNotFound
	}
	return &users[0], nil
}

// List returns all users.
func (r *Users) List(ctx context.Context) ([]User, error) {
	return r.list(ctx, "")
}

// ListByType returns all users of one role.
func (r *Users) ListByType(ctx context.Context, userType string) ([]User, error) {
	return r.list(ctx, "user_type=eq."+queryEscape(userType))
}

func (r *Users) list(ctx context.Context, query string) ([]User, error) {
	data, err := r.client.Select(ctx, "users", query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	return users, nil
}

// Update merges the given columns over the stored row and returns the
// result. Callers are responsible for stripping immutable columns.
func (r *Users) Update(ctx context.Context, id int64, fields map[string]interface{}) (*User, error) {
	data, err := r.client.Update(ctx, "users", fields, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	if len(users) == 0 {
		return nil, store.ErrNotFound
	}
	return &users[0], nil
}

// Delete removes the user row.
func (r *Users) Delete(ctx context.Context, id int64) error {
	if _, err := r.client.Delete(ctx, "users", fmt.Sprintf("id=eq.%d", id)); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
