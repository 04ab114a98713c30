// Package dietas exposes the diet plan CRUD plus the nested refeicao
// routes of one dieta.
package dietas

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

const notFoundMsg = "Dieta não encontrada"

// List returns all active dietas.
func List(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := dietas.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list dietas failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one dieta by id.
func Get(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		dieta, err := dietas.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, dieta)
	}
}

// ListByAluno returns the active dietas of one aluno.
func ListByAluno(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		alunoID, ok := httputil.IDParam(c, "aluno_id")
		if !ok {
			return
		}

		list, err := dietas.ListByAluno(c.Request.Context(), alunoID)
		if err != nil {
			log.Error().Err(err).Msg("list dietas by aluno failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListByPersonal returns every dieta authored by one professor.
func ListByPersonal(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		personalID, ok := httputil.IDParam(c, "personal_id")
		if !ok {
			return
		}

		list, err := dietas.ListByCriador(c.Request.Context(), personalID)
		if err != nil {
			log.Error().Err(err).Msg("list dietas by personal failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create inserts a new dieta.
func Create(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DietaCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Titulo == "" || req.DataInicio == "" || req.CriadorID == 0 || req.AlunoID == 0 {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça título, data de início, ID do criador e ID do aluno")
			return
		}

		dieta, err := dietas.Create(c.Request.Context(), req)
		if err != nil {
			log.Error().Err(err).Msg("create dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, dieta)
	}
}

// Update merges the payload over the stored dieta.
func Update(dietas *models.Dietas) gin.HandlerFunc {
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

		if _, err := dietas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update dieta: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		dieta, err := dietas.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, dieta)
	}
}

// Delete removes a dieta.
func Delete(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := dietas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete dieta: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := dietas.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Dieta deletada com sucesso"})
	}
}

// ListRefeicoes returns the refeicoes of one dieta.
func ListRefeicoes(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := dietas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("list refeicoes: dieta lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		refeicoes, err := dietas.ListRefeicoes(c.Request.Context(), id)
		if err != nil {
			log.Error().Err(err).Msg("list refeicoes da dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, refeicoes)
	}
}

// AddRefeicao inserts a refeicao into one dieta.
func AddRefeicao(dietas *models.Dietas) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		var req models.RefeicaoCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Nome == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça o nome da refeição")
			return
		}

		if _, err := dietas.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("add refeicao: dieta lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		refeicao, err := dietas.AddRefeicao(c.Request.Context(), id, req)
		if err != nil {
			log.Error().Err(err).Msg("add refeicao à dieta failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, refeicao)
	}
}

// Routes mounts the dieta endpoints.
func Routes(rg *gin.RouterGroup, dietas *models.Dietas) {
	rg.POST("", Create(dietas))
	rg.GET("", List(dietas))
	rg.GET("/:id", Get(dietas))
	rg.GET("/aluno/:aluno_id", ListByAluno(dietas))
	rg.GET("/personal/:personal_id", ListByPersonal(dietas))
	rg.PUT("/:id", Update(dietas))
	rg.DELETE("/:id", Delete(dietas))
	rg.POST("/:id/refeicoes", AddRefeicao(dietas))
	rg.GET("/:id/refeicoes", ListRefeicoes(dietas))
}
