// Package historicopeso exposes the weight tracking endpoints.
package historicopeso

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

const notFoundMsg = "Registro de peso não encontrado"

// List returns every weight entry, most recent first.
func List(historico *models.HistoricoPeso) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := historico.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list historico de peso failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one entry by id.
func Get(historico *models.HistoricoPeso) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		registro, err := historico.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get registro de peso failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, registro)
	}
}

// ListByAluno returns one aluno's weight history, most recent first. The
// descending order makes the first element the current weight.
func ListByAluno(historico *models.HistoricoPeso) gin.HandlerFunc {
	return func(c *gin.Context) {
		alunoID, ok := httputil.IDParam(c, "aluno_id")
		if !ok {
			return
		}

		list, err := historico.ListByAluno(c.Request.Context(), alunoID)
		if err != nil {
			log.Error().Err(err).Msg("list historico de peso by aluno failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create registers a new weight entry.
func Create(historico *models.HistoricoPeso) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegistroPesoCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.AlunoID == 0 || req.Peso == 0 {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça aluno_id e peso")
			return
		}

		registro, err := historico.Create(c.Request.Context(), req)
		if err != nil {
			log.Error().Err(err).Msg("create registro de peso failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, registro)
	}
}

// Update merges the payload over the stored entry.
func Update(historico *models.HistoricoPeso) gin.HandlerFunc {
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

		if _, err := historico.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update registro de peso: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		registro, err := historico.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update registro de peso failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, registro)
	}
}

// Delete removes a weight entry.
func Delete(historico *models.HistoricoPeso) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := historico.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete registro de peso: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := historico.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete registro de peso failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Registro de peso deletado com sucesso"})
	}
}

// Routes mounts the weight tracking endpoints.
func Routes(rg *gin.RouterGroup, historico *models.HistoricoPeso) {
	rg.POST("", Create(historico))
	rg.GET("", List(historico))
	rg.GET("/:id", Get(historico))
	rg.GET("/aluno/:aluno_id", ListByAluno(historico))
	rg.PUT("/:id", Update(historico))
	rg.DELETE("/:id", Delete(historico))
}
