package client

import (
	"context"
	"fmt"
)

// MensagemInput is the send payload.
type MensagemInput struct {
	ConversaID  int64  `json:"conversa_id"`
	RemetenteID int64  `json:"remetente_id"`
	Conteudo    string `json:"conteudo"`
	TipoUsuario string `json:"tipo_usuario,omitempty"`
}

// Mensagens returns every mensagem, most recent first.
func (c *Client) Mensagens(ctx context.Context) ([]Mensagem, error) {
	var mensagens []Mensagem
	if err := c.get(ctx, "/api/mensagens", &mensagens); err != nil {
		return nil, err
	}
	return mensagens, nil
}

// Mensagem returns one mensagem by id.
func (c *Client) Mensagem(ctx context.Context, id int64) (*Mensagem, error) {
	var mensagem Mensagem
	if err := c.get(ctx, fmt.Sprintf("/api/mensagens/%d", id), &mensagem); err != nil {
		return nil, err
	}
	return &mensagem, nil
}

// MensagensDoRemetente returns every mensagem sent by one user.
func (c *Client) MensagensDoRemetente(ctx context.Context, remetenteID int64) ([]Mensagem, error) {
	var mensagens []Mensagem
	if err := c.get(ctx, fmt.Sprintf("/api/mensagens/remetente/%d", remetenteID), &mensagens); err != nil {
		return nil, err
	}
	return mensagens, nil
}

// SendMensagem sends a mensagem into an existing conversa.
func (c *Client) SendMensagem(ctx context.Context, input MensagemInput) (*Mensagem, error) {
	var mensagem Mensagem
	if err := c.post(ctx, "/api/mensagens", input, &mensagem); err != nil {
		return nil, err
	}
	return &mensagem, nil
}

// MarkMensagemLida flags one mensagem as read.
func (c *Client) MarkMensagemLida(ctx context.Context, id int64) (*Mensagem, error) {
	fields := map[string]interface{}{"lida": true}

	var mensagem Mensagem
	if err := c.put(ctx, fmt.Sprintf("/api/mensagens/%d", id), fields, &mensagem); err != nil {
		return nil, err
	}
	return &mensagem, nil
}

// DeleteMensagem removes a mensagem.
func (c *Client) DeleteMensagem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/mensagens/%d", id))
}
