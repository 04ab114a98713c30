// Package refeicoes exposes the standalone meal CRUD. The nested routes
// under /api/dietas/:id/refeicoes live in the dietas package.
package refeicoes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

const notFoundMsg = "Refeição não encontrada"

// Get returns one refeicao by id.
func Get(refeicoes *models.Refeicoes) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		refeicao, err := refeicoes.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get refeicao failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, refeicao)
	}
}

// ListByDieta returns the refeicoes of one dieta.
func ListByDieta(refeicoes *models.Refeicoes) gin.HandlerFunc {
	return func(c *gin.Context) {
		dietaID, ok := httputil.IDParam(c, "dieta_id")
		if !ok {
			return
		}

		list, err := refeicoes.ListByDieta(c.Request.Context(), dietaID)
		if err != nil {
			log.Error().Err(err).Msg("list refeicoes by dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create inserts a new refeicao bound to an existing dieta.
func Create(refeicoes *models.Refeicoes) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RefeicaoCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Nome == "" || req.DietaID == 0 {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça nome e dieta_id")
			return
		}

		refeicao, err := refeicoes.Create(c.Request.Context(), req)
		if err != nil {
			log.Error().Err(err).Msg("create refeicao failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, refeicao)
	}
}

// Update merges the payload over the stored refeicao.
func Update(refeicoes *models.Refeicoes) gin.HandlerFunc {
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

		if _, err := refeicoes.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update refeicao: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		refeicao, err := refeicoes.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update refeicao failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, refeicao)
	}
}

// Delete removes a refeicao.
func Delete(refeicoes *models.Refeicoes) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := refeicoes.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete refeicao: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := refeicoes.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete refeicao failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Refeição deletada com sucesso"})
	}
}

// Routes mounts the refeicao endpoints.
func Routes(rg *gin.RouterGroup, refeicoes *models.Refeicoes) {
	rg.POST("", Create(refeicoes))
	rg.GET("/:id", Get(refeicoes))
	rg.GET("/dieta/:dieta_id", ListByDieta(refeicoes))
	rg.PUT("/:id", Update(refeicoes))
	rg.DELETE("/:id", Delete(refeicoes))
}
