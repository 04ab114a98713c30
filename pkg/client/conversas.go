package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ConversaComParticipante is a conversa joined with the counterpart user,
// as the chat list screens render it.
type ConversaComParticipante struct {
	Conversa
	Participante *User `json:"participante,omitempty"`
	// ParticipanteNome always holds a displayable name; when the user
	// fetch fails it carries a placeholder instead.
	ParticipanteNome string `json:"participante_nome"`
}

// Conversas returns every conversa.
func (c *Client) Conversas(ctx context.Context) ([]Conversa, error) {
	var conversas []Conversa
	if err := c.get(ctx, "/api/conversas", &conversas); err != nil {
		return nil, err
	}
	return conversas, nil
}

// Conversa returns one conversa by id.
func (c *Client) Conversa(ctx context.Context, id int64) (*Conversa, error) {
	var conversa Conversa
	if err := c.get(ctx, fmt.Sprintf("/api/conversas/%d", id), &conversa); err != nil {
		return nil, err
	}
	return &conversa, nil
}

// ConversasDoAluno returns one aluno's conversas.
func (c *Client) ConversasDoAluno(ctx context.Context, alunoID int64) ([]Conversa, error) {
	var conversas []Conversa
	if err := c.get(ctx, fmt.Sprintf("/api/conversas/aluno/%d", alunoID), &conversas); err != nil {
		return nil, err
	}
	return conversas, nil
}

// ConversasDoProfessor returns one professor's conversas.
func (c *Client) ConversasDoProfessor(ctx context.Context, professorID int64) ([]Conversa, error) {
	var conversas []Conversa
	if err := c.get(ctx, fmt.Sprintf("/api/conversas/professor/%d", professorID), &conversas); err != nil {
		return nil, err
	}
	return conversas, nil
}

// CreateConversa opens a conversa between an aluno and a professor. An
// existing conversa for the same pair is a server-side 400.
func (c *Client) CreateConversa(ctx context.Context, alunoID, professorID int64) (*Conversa, error) {
	body := map[string]int64{"aluno_id": alunoID, "professor_id": professorID}

	var conversa Conversa
	if err := c.post(ctx, "/api/conversas", body, &conversa); err != nil {
		return nil, err
	}
	return &conversa, nil
}

// DeleteConversa removes a conversa.
func (c *Client) DeleteConversa(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/conversas/%d", id))
}

// MensagensDaConversa returns the mensagens of one conversa, oldest
// first.
func (c *Client) MensagensDaConversa(ctx context.Context, conversaID int64) ([]Mensagem, error) {
	var mensagens []Mensagem
	if err := c.get(ctx, fmt.Sprintf("/api/conversas/%d/mensagens", conversaID), &mensagens); err != nil {
		return nil, err
	}
	return mensagens, nil
}

// AddMensagemToConversa sends a mensagem into the conversa named by id.
func (c *Client) AddMensagemToConversa(ctx context.Context, conversaID, remetenteID int64, conteudo string) (*Mensagem, error) {
	body := map[string]interface{}{
		"remetente_id": remetenteID,
		"conteudo":     conteudo,
	}

	var mensagem Mensagem
	if err := c.post(ctx, fmt.Sprintf("/api/conversas/%d/mensagens", conversaID), body, &mensagem); err != nil {
		return nil, err
	}
	return &mensagem, nil
}

// ConversasComParticipante lists the conversas of one user and resolves
// each counterpart profile concurrently. userType selects which side the
// caller is on. A failed user fetch never fails the list: the entry keeps
// a placeholder name and a nil Participante.
func (c *Client) ConversasComParticipante(ctx context.Context, userID int64, userType string) ([]ConversaComParticipante, error) {
	var (
		conversas []Conversa
		err       error
	)
	if userType == "professor" {
		conversas, err = c.ConversasDoProfessor(ctx, userID)
	} else {
		conversas, err = c.ConversasDoAluno(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]ConversaComParticipante, len(conversas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, conversa := range conversas {
		result[i].Conversa = conversa

		counterpartID := conversa.ProfessorID
		placeholder := "Personal não encontrado"
		if userType == "professor" {
			counterpartID = conversa.AlunoID
			placeholder = "Aluno não encontrado"
		}

		i := i
		g.Go(func() error {
			user, err := c.User(gctx, counterpartID)
			if err != nil {
				result[i].ParticipanteNome = placeholder
				return nil
			}
			result[i].Participante = user
			result[i].ParticipanteNome = user.Name
			return nil
		})
	}

	// Goroutines never return errors; Wait only propagates context
	// cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
