// Package models contains the data-access objects of the API. Each type
// wraps one table of the managed store; every method issues a single round
// trip through the PostgREST client.
package models

import "github.com/fikifit/fikifit/internal/store"

// Repos bundles one repository per table.
type Repos struct {
	Users         *Users
	Treinos       *Treinos
	Exercicios    *Exercicios
	Dietas        *Dietas
	Refeicoes     *Refeicoes
	Conversas     *Conversas
	Mensagens     *Mensagens
	HistoricoPeso *HistoricoPeso
}

// New creates the repository set backed by the given store client.
func New(client *store.Client) *Repos {
	return &Repos{
		Users:         &Users{client: client},
		Treinos:       &Treinos{client: client},
		Exercicios:    &Exercicios{client: client},
		Dietas:        &Dietas{client: client},
		Refeicoes:     &Refeicoes{client: client},
		Conversas:     &Conversas{client: client},
		Mensagens:     &Mensagens{client: client},
		HistoricoPeso: &HistoricoPeso{client: client},
	}
}
