// Package conversas exposes the chat threads between alunos and
// professores, plus the message listing of one thread.
package conversas

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

const notFoundMsg = "Conversa não encontrada"

type createRequest struct {
	AlunoID     int64 `json:"aluno_id"`
	ProfessorID int64 `json:"professor_id"`
}

// List returns every conversa.
func List(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := conversas.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list conversas failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one conversa by id.
func Get(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		conversa, err := conversas.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, conversa)
	}
}

// ListByAluno returns the conversas of one aluno.
func ListByAluno(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		alunoID, ok := httputil.IDParam(c, "aluno_id")
		if !ok {
			return
		}

		list, err := conversas.ListByAluno(c.Request.Context(), alunoID)
		if err != nil {
			log.Error().Err(err).Msg("list conversas by aluno failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListByProfessor returns the conversas of one professor.
func ListByProfessor(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		professorID, ok := httputil.IDParam(c, "professor_id")
		if !ok {
			return
		}

		list, err := conversas.ListByProfessor(c.Request.Context(), professorID)
		if err != nil {
			log.Error().Err(err).Msg("list conversas by professor failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create opens a conversa between an aluno and a professor. The pair is
// directional: an existing (aluno, professor) conversa is a conflict, but
// the reversed ids are not checked. The lookup and the insert are separate
// round trips, so two concurrent creates for the same pair can both
// succeed.
func Create(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.AlunoID == 0 || req.ProfessorID == 0 {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça aluno_id e professor_id")
			return
		}

		ctx := c.Request.Context()
		existing, err := conversas.FindByParticipantes(ctx, req.AlunoID, req.ProfessorID)
		if err == nil && existing != nil {
			httputil.Error(c, http.StatusBadRequest, "Já existe uma conversa entre esses usuários")
			return
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("create conversa: pair lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		conversa, err := conversas.Create(ctx, models.ConversaCreate{
			AlunoID:     req.AlunoID,
			ProfessorID: req.ProfessorID,
		})
		if err != nil {
			log.Error().Err(err).Msg("create conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, conversa)
	}
}

// Update merges the payload over the stored conversa.
func Update(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}
		delete(fields, "id")

		if _, err := conversas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update conversa: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		conversa, err := conversas.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, conversa)
	}
}

// Delete removes a conversa. Messages of the thread are left to the
// store's foreign key cascade.
func Delete(conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := conversas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete conversa: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := conversas.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Conversa deletada com sucesso"})
	}
}

// ListMensagens returns the mensagens of one conversa, oldest first.
func ListMensagens(conversas *models.Conversas, mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := conversas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("list mensagens: conversa lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		list, err := mensagens.ListByConversa(c.Request.Context(), id)
		if err != nil {
			log.Error().Err(err).Msg("list mensagens da conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AddMensagem sends a mensagem into the conversa named by the path and
// bumps the thread's ultima_mensagem. The bump is a second round trip; if
// it fails the mensagem stays stored and only the failure is logged.
func AddMensagem(conversas *models.Conversas, mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		var req models.MensagemCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.RemetenteID == 0 || req.Conteudo == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça remetente_id e conteúdo")
			return
		}
		req.ConversaID = id

		ctx := c.Request.Context()
		if _, err := conversas.GetByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("add mensagem: conversa lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		mensagem, err := mensagens.Create(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("add mensagem à conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		fields := map[string]interface{}{
			"ultima_mensagem": time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := conversas.Update(ctx, id, fields); err != nil {
			log.Error().Err(err).Int64("conversa_id", id).
				Msg("bump ultima_mensagem failed")
		}

		c.JSON(http.StatusCreated, mensagem)
	}
}

// Routes mounts the conversa endpoints.
func Routes(rg *gin.RouterGroup, conversas *models.Conversas, mensagens *models.Mensagens) {
	rg.POST("", Create(conversas))
	rg.GET("", List(conversas))
	rg.GET("/:id", Get(conversas))
	rg.GET("/aluno/:aluno_id", ListByAluno(conversas))
	rg.GET("/professor/:professor_id", ListByProfessor(conversas))
	rg.PUT("/:id", Update(conversas))
	rg.DELETE("/:id", Delete(conversas))
	rg.GET("/:id/mensagens", ListMensagens(conversas, mensagens))
	rg.POST("/:id/mensagens", AddMensagem(conversas, mensagens))
}
