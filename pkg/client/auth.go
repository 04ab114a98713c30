package client

import "context"

// minPasswordLen is enforced client-side before any request leaves.
const minPasswordLen = 6

// RegisterInput is the register payload. Role-specific fields are
// optional.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type,omitempty"`

	Telefone       string   `json:"telefone,omitempty"`
	DataNascimento string   `json:"data_nascimento,omitempty"`
	Altura         *float64 `json:"altura,omitempty"`
	Objetivo       string   `json:"objetivo,omitempty"`

	Especializacao  string `json:"especializacao,omitempty"`
	Cref            string `json:"cref,omitempty"`
	Descricao       string `json:"descricao,omitempty"`
	ExperienciaAnos *int   `json:"experiencia_anos,omitempty"`
}

// Register creates an account and returns the public user record.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if len(input.Password) < minPasswordLen {
		return nil, &APIError{Kind: KindRequest, Message: "A senha deve ter pelo menos 6 caracteres"}
	}

	var user User
	if err := c.post(ctx, "/api/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns the public user record.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var user User
	if err := c.post(ctx, "/api/auth/login", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
