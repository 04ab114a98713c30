// Package treinos exposes the workout CRUD plus the nested exercicio
// routes of one treino.
package treinos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

const notFoundMsg = "Treino não encontrado"

// List returns all active treinos.
func List(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := treinos.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list treinos failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one treino by id.
func Get(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		treino, err := treinos.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("get treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, treino)
	}
}

// ListByAluno returns the active treinos of one aluno. No matches is an
// empty array, never a 404.
func ListByAluno(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		alunoID, ok := httputil.IDParam(c, "aluno_id")
		if !ok {
			return
		}

		list, err := treinos.ListByAluno(c.Request.Context(), alunoID)
		if err != nil {
			log.Error().Err(err).Msg("list treinos by aluno failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// ListByPersonal returns every treino authored by one professor.
func ListByPersonal(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		personalID, ok := httputil.IDParam(c, "personal_id")
		if !ok {
			return
		}

		list, err := treinos.ListByCriador(c.Request.Context(), personalID)
		if err != nil {
			log.Error().Err(err).Msg("list treinos by personal failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create inserts a new treino.
func Create(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TreinoCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Titulo == "" || req.CriadorID == 0 || req.AlunoID == 0 {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça título, ID do criador e ID do aluno")
			return
		}

		treino, err := treinos.Create(c.Request.Context(), req)
		if err != nil {
			log.Error().Err(err).Msg("create treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, treino)
	}
}

// Update merges the payload over the stored treino.
func Update(treinos *models.Treinos) gin.HandlerFunc {
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

		if _, err := treinos.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("update treino: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		treino, err := treinos.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, treino)
	}
}

// Delete removes a treino. Hard delete; deactivation goes through Update
// with ativo=false.
func Delete(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := treinos.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("delete treino: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := treinos.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Treino deletado com sucesso"})
	}
}

// ListExercicios returns the exercicios of one treino.
func ListExercicios(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := treinos.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("list exercicios: treino lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		exercicios, err := treinos.ListExercicios(c.Request.Context(), id)
		if err != nil {
			log.Error().Err(err).Msg("list exercicios do treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, exercicios)
	}
}

// AddExercicio inserts an exercicio into one treino. The parent insert and
// this one are separate round trips: a failure here leaves the treino
// without the exercicio, which callers must tolerate.
func AddExercicio(treinos *models.Treinos) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		var req models.ExercicioCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Nome == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça o nome do exercício")
			return
		}

		if _, err := treinos.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, notFoundMsg)
				return
			}
			log.Error().Err(err).Msg("add exercicio: treino lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		exercicio, err := treinos.AddExercicio(c.Request.Context(), id, req)
		if err != nil {
			log.Error().Err(err).Msg("add exercicio ao treino failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, exercicio)
	}
}

// Routes mounts the treino endpoints.
func Routes(rg *gin.RouterGroup, treinos *models.Treinos) {
	rg.POST("", Create(treinos))
	rg.GET("", List(treinos))
	rg.GET("/:id", Get(treinos))
	rg.GET("/aluno/:aluno_id", ListByAluno(treinos))
	rg.GET("/personal/:personal_id", ListByPersonal(treinos))
	rg.PUT("/:id", Update(treinos))
	rg.DELETE("/:id", Delete(treinos))
	rg.POST("/:id/exercicios", AddExercicio(treinos))
	rg.GET("/:id/exercicios", ListExercicios(treinos))
}
