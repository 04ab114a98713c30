// Package auth implements registration and login. There is no token
// issuance: a successful login returns the public user record and the
// client persists it as its whole session.
package auth

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/fikifit/fikifit/internal/httputil"
	"github.com/fikifit/fikifit/internal/models"
	"github.com/fikifit/fikifit/internal/store"
)

// bcrypt cost used for password hashes.
const HashCost = 10

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the simple
// local@domain.tld shape check used at registration.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// RegisterRequest is the register payload. Role-specific fields are
// optional; the store keeps the unused set null.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`

	Telefone       string   `json:"telefone"`
	DataNascimento string   `json:"data_nascimento"`
	Altura         *float64 `json:"altura"`
	Objetivo       string   `json:"objetivo"`

	Especializacao  string `json:"especializacao"`
	Cref            string `json:"cref"`
	Descricao       string `json:"descricao"`
	ExperienciaAnos *int   `json:"experiencia_anos"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register registers a user.
//
// Email uniqueness is a lookup-then-insert check: two concurrent
// registrations with the same email can both pass the lookup. Accepted
// race; the store has no unique constraint at this layer.
func Register(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, preencha os campos obrigatórios: nome, email e senha")
			return
		}

		if !ValidEmail(req.Email) {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça um email válido")
			return
		}

		_, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err == nil {
			httputil.Error(c, http.StatusBadRequest, "Usuário com este email já existe")
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("register: email lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), HashCost)
		if err != nil {
			log.Error().Err(err).Msg("register: hash failed")
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
			log.Error().Err(err).Msg("register: create failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"user_type":   user.UserType,
			"telefone":    user.Telefone,
			"foto_perfil": user.FotoPerfil,
		})
	}
}

// Login authenticates a user. Unknown email and wrong password produce the
// same response so the endpoint cannot be used to enumerate accounts.
func Login(users *models.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.Error(c, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.Email == "" || req.Password == "" {
			httputil.Error(c, http.StatusBadRequest, "Por favor, forneça email e senha")
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.Error(c, http.StatusBadRequest, "Credenciais inválidas")
				return
			}
			log.Error().Err(err).Msg("login: lookup failed")
			httputil.Error(c, http.StatusInternalServerError, err.Error())
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			httputil.Error(c, http.StatusBadRequest, "Credenciais inválidas")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"user_type":   user.UserType,
			"telefone":    user.Telefone,
			"foto_perfil": user.FotoPerfil,
		})
	}
}

// Routes mounts the auth endpoints.
func Routes(rg *gin.RouterGroup, users *models.Users) {
	rg.POST("/register", Register(users))
	rg.POST("/login", Login(users))
}
