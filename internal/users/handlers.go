// Package users exposes the user profile CRUD. The generic update strips
// email and password; a password change goes through the distinguished
// newPassword field and is re-hashed.
package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/fikifit/fikifit/internal/auth"
	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

// List returns every user.
func List(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("list users failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, publicList(list))
	}
}

// Get returns one user by id.
func Get(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, "Usuário não encontrado")
				return
			}
			log.Error().Err(err).Msg("get user failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

// ListByType returns the users of one role; any other role value is a 400.
func ListByType(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.Param("user_type")
		if userType != models.UserTypeAluno && userType != models.UserTypeProfessor {
			httputil.Error(c, http.StatusBadRequest, `Tipo de usuário inválido. Use "professor" ou "aluno"`)
			return
		}

		list, err := users.ListByType(c.Request.Context(), userType)
		if err != nil {
			log.Error().Err(err).Msg("list users by type failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, publicList(list))
	}
}

// Create registers a user through the same path as /api/auth/register but
// returns the full public profile.
func Create(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, preencha os campos obrigatórios: nome, email e senha")
			return
		}

		if !auth.ValidEmail(req.Email) {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça um email válido")
			return
		}

		_, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err == nil {
			httputil.Error(c, http.StatusBadRequest, "Usuário com este email já existe")
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("create user: email lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), auth.HashCost)
		if err != nil {
			log.Error().Err(err).Msg("create user: hash failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		userType := req.UserType
		if userType == "" {
			userType = models.UserTypeAluno
		}

		user, err := users.Create(c.Request.Context(), models.UserCreate{
			Name:            req.Name,
			Email:           req.Email,
			Password:        string(hash),
			UserType:        userType,
			Telefone:        req.Telefone,
			DataNascimento:  req.DataNascimento,
			Altura:          req.Altura,
			Objetivo:        req.Objetivo,
			Especializacao:  req.Especializacao,
			Cref:            req.Cref,
			Descricao:       req.Descricao,
			ExperienciaAnos: req.ExperienciaAnos,
		})
		if err != nil {
			log.Error().Err(err).Msg("create user failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, user.Public())
	}
}

// Update merges the payload over the stored row. Email is immutable here
// and the stored hash only changes when newPassword is present.
func Update(users *models.Users) gin.HandlerFunc {
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

		delete(fields, "password")
		delete(fields, "email")
		delete(fields, "id")

		if raw, ok := fields["newPassword"]; ok {
			delete(fields, "newPassword")
			newPassword, _ := raw.(string)
			if newPassword != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), auth.HashCost)
				if err != nil {
					log.Error().Err(err).Msg("update user: hash failed")
					httputil.Error(c, http.StatusInternalServerError, err.Error())
					return
				}
				fields["password"] = string(hash)
			}
		}

		if _, err := users.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, "Usuário não encontrado")
				return
			}
			log.Error().Err(err).Msg("update user: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		user, err := users.Update(c.Request.Context(), id, fields)
		if err != nil {
			log.Error().Err(err).Msg("update user failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

// Delete removes a user.
func Delete(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.IDParam(c, "id")
		if !ok {
			return
		}

		if _, err := users.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusNotFound, "Usuário não encontrado")
				return
			}
			log.Error().Err(err).Msg("delete user: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := users.Delete(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Msg("delete user failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Usuário deletado com sucesso"})
	}
}

// Routes mounts the user endpoints.
func Routes(rg *gin.RouterGroup, users *models.Users) {
	rg.POST("", Create(users))
	rg.GET("", List(users))
	rg.GET("/:id", Get(users))
	rg.GET("/type/:user_type", ListByType(users))
	rg.PUT("/update/:id", Update(users))
	rg.DELETE("/:id", Delete(users))
}

func publicList(list []models.User) []*models.PublicUser {
	out := make([]*models.PublicUser, len(list))
	for i := range list {
		out[i] = list[i].Public()
	}
	return out
}
