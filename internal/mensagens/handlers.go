// Package mensagens exposes the message CRUD. Listing the messages of a
// thread lives under the conversas routes.
package mensagens

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

const notFoundMsg = "Mensagem não encontrada"

// List returns every mensagem, most recent first.
func List(mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := mensagens.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list mensagens failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one mensagem by id.
func Get(mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		mensagem, err := mensagens.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get mensagem failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, mensagem)
	}
}

// ListByConversa returns the mensagens of one conversa, oldest first.
func ListByConversa(mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		conversaID, ok := httputil.IDParam(c, "conversa_id")
		if !ok {
			return
		}

		list, err := mensagens.ListByConversa(c.Request.Context(), conversaID)
		if err != nil {
			log.Error().Err(err).Msg("list mensagens by conversa failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListByRemetente returns every mensagem sent by one user.
func ListByRemetente(mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		remetenteID, ok := httputil.IDParam(c, "remetente_id")
		if !ok {
			return
		}

		list, err := mensagens.ListByRemetente(c.Request.Context(), remetenteID)
		if err != nil {
			log.Error().Err(err).Msg("list mensagens by remetente failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create sends a mensagem into an existing conversa and bumps the thread's
// ultima_mensagem. The bump is a second round trip; if it fails the
// mensagem stays stored and only the failure is logged.
func Create(mensagens *models.Mensagens, conversas *models.Conversas) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MensagemCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.ConversaID == 0 || req.RemetenteID == 0 || req.Conteudo == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça conversa_id, remetente_id e conteúdo")
			return
		}

		ctx := c.Request.Context()
		if _, err := conversas.GetByID(ctx, req.ConversaID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, "Conversa não encontrada")
				return
			}
			log.Error().Err(err).Msg("create mensagem: conversa lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		mensagem, err := mensagens.Create(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("create mensagem failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		fields := map[string]interface{}{
			"ultima_mensagem": time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := conversas.Update(ctx, req.ConversaID, fields); err != nil {
			log.Error().Err(err).Int64("conversa_id", req.ConversaID).
				Msg("bump ultima_mensagem failed")
		}

		c.JSON(http.StatusCreated, mensagem)
	}
}

// Update merges the payload over the stored mensagem. Clients use this to
// mark messages as lida.
func Update(mensagens *models.Mensagens) gin.HandlerFunc {
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

		if _, err := mensagens.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update mensagem: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		mensagem, err := mensagens.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update mensagem failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, mensagem)
	}
}

// Delete removes a mensagem.
func Delete(mensagens *models.Mensagens) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := mensagens.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete mensagem: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := mensagens.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete mensagem failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Mensagem deletada com sucesso"})
	}
}

// Routes mounts the mensagem endpoints.
func Routes(rg *gin.RouterGroup, mensagens *models.Mensagens, conversas *models.Conversas) {
	rg.POST("", Create(mensagens, conversas))
	rg.GET("", List(mensagens))
	rg.GET("/:id", Get(mensagens))
	rg.GET("/conversa/:conversa_id", ListByConversa(mensagens))
	rg.GET("/remetente/:remetente_id", ListByRemetente(mensagens))
	rg.PUT("/:id", Update(mensagens))
	rg.DELETE("/:id", Delete(mensagens))
}
