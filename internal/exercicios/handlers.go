// Package exercicios exposes the standalone exercise CRUD. The nested
// routes under /api/treinos/:id/exercicios live in the treinos package.
package exercicios

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

const notFoundMsg = "Exercício não encontrado"

// List returns every exercicio.
func List(exercicios *models.Exercicios) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := exercicios.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list exercicios failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one exercicio by id.
func Get(exercicios *models.Exercicios) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		exercicio, err := exercicios.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get exercicio failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, exercicio)
	}
}

// ListByTreino returns the exercicios of one treino.
func ListByTreino(exercicios *models.Exercicios) gin.HandlerFunc {
	return func(c *gin.Context) {
		treinoID, ok := httputil.IDParam(c, "treino_id")
		if !ok {
			return
		}

		list, err := exercicios.ListByTreino(c.Request.Context(), treinoID)
		if err != nil {
			log.Error().Err(err).Msg("list exercicios by treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create inserts a new exercicio.
func Create(exercicios *models.Exercicios) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ExercicioCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Nome == "" || req.TreinoID == 0 {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça nome e treino_id")
			return
		}

		exercicio, err := exercicios.Create(c.Request.Context(), req)
		if err != nil {
			log.Error().Err(err).Msg("create exercicio failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, exercicio)
	}
}

// Update merges the payload over the stored exercicio.
func Update(exercicios *models.Exercicios) gin.HandlerFunc {
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

		if _, err := exercicios.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update exercicio: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		exercicio, err := exercicios.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update exercicio failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, exercicio)
	}
}

// Delete removes an exercicio.
func Delete(exercicios *models.Exercicios) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := exercicios.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete exercicio: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := exercicios.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete exercicio failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Exercício deletado com sucesso"})
	}
}

// Routes mounts the exercicio endpoints.
func Routes(rg *gin.RouterGroup, exercicios *models.Exercicios) {
	rg.POST("", Create(exercicios))
	rg.GET("", List(exercicios))
	rg.GET("/:id", Get(exercicios))
	rg.GET("/treino/:treino_id", ListByTreino(exercicios))
	rg.PUT("/:id", Update(exercicios))
	rg.DELETE("/:id", Delete(exercicios))
}
