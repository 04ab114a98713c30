package client

import "time"

// User is the public user shape the API returns. The password hash never
// crosses the wire.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserType   string `json:"user_type"`
	Telefone   string `json:"telefone,omitempty"`
	FotoPerfil string `json:"foto_perfil,omitempty"`

	DataNascimento string   `json:"data_nascimento,omitempty"`
	Altura         *float64 `json:"altura,omitempty"`
	Objetivo       string   `json:"objetivo,omitempty"`

	Especializacao  string `json:"especializacao,omitempty"`
	Cref            string `json:"cref,omitempty"`
	Descricao       string `json:"descricao,omitempty"`
	ExperienciaAnos *int   `json:"experiencia_anos,omitempty"`
}

// Treino is a workout plan.
type Treino struct {
	ID              int64      `json:"id"`
	Titulo          string     `json:"titulo"`
	Descricao       string     `json:"descricao,omitempty"`
	Nivel           string     `json:"nivel,omitempty"`
	Categoria       string     `json:"categoria,omitempty"`
	DataCriacao     time.Time  `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao,omitempty"`
	CriadorID       int64      `json:"criador_id"`
	AlunoID         int64      `json:"aluno_id"`
	Ativo           bool       `json:"ativo"`
	Observacoes     string     `json:"observacoes,omitempty"`
}

// Exercicio is one exercise of a treino.
type Exercicio struct {
	ID          int64    `json:"id"`
	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Categoria   string   `json:"categoria,omitempty"`
	Dificuldade string   `json:"dificuldade,omitempty"`
	Series      *int     `json:"series,omitempty"`
	Repeticoes  *int     `json:"repeticoes,omitempty"`
	Duracao     *int     `json:"duracao,omitempty"`
	Carga       *float64 `json:"carga,omitempty"`
	Observacoes string   `json:"observacoes,omitempty"`
	TreinoID    int64    `json:"treino_id"`
}

// Dieta is a diet plan. Dates travel as "YYYY-MM-DD" strings.
type Dieta struct {
	ID          int64  `json:"id"`
	Titulo      string `json:"titulo"`
	Descricao   string `json:"descricao,omitempty"`
	TipoDieta   string `json:"tipo_dieta,omitempty"`
	DataInicio  string `json:"data_inicio"`
	DataFim     string `json:"data_fim,omitempty"`
	CriadorID   int64  `json:"criador_id"`
	AlunoID     int64  `json:"aluno_id"`
	Ativo       bool   `json:"ativo"`
	Observacoes string `json:"observacoes,omitempty"`
}

// Refeicao is one meal of a dieta.
type Refeicao struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	Horario     string `json:"horario,omitempty"`
	Calorias    *int   `json:"calorias,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	DietaID     int64  `json:"dieta_id"`
}

// Conversa is a chat thread between an aluno and a professor.
type Conversa struct {
	ID             int64      `json:"id"`
	AlunoID        int64      `json:"aluno_id"`
	ProfessorID    int64      `json:"professor_id"`
	DataInicio     time.Time  `json:"data_inicio"`
	UltimaMensagem *time.Time `json:"ultima_mensagem,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// Mensagem is one message of a conversa.
type Mensagem struct {
	ID          int64     `json:"id"`
	ConversaID  int64     `json:"conversa_id"`
	RemetenteID int64     `json:"remetente_id"`
	Conteudo    string    `json:"conteudo"`
	DataEnvio   time.Time `json:"data_envio"`
	Lida        bool      `json:"lida"`
	TipoUsuario string    `json:"tipo_usuario,omitempty"`
}

// RegistroPeso is one weight history entry.
type RegistroPeso struct {
	ID           int64     `json:"id"`
	AlunoID      int64     `json:"aluno_id"`
	Peso         float64   `json:"peso"`
	DataRegistro time.Time `json:"data_registro"`
	Observacoes  string    `json:"observacoes,omitempty"`
}
