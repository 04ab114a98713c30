package client

import "fmt"

// ErrorKind classifies an APIError by where the request died.
type ErrorKind int

const (
	// KindServer means the server answered with an error status; Message
	// carries the server's msg field.
	KindServer ErrorKind = iota
	// KindNoResponse means the request left but no response arrived
	// (network failure, timeout, refused connection).
	KindNoResponse
	// KindRequest means the request could not be built or encoded.
	KindRequest
)

// APIError is the only error type the SDK returns for failed calls.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Kind == KindServer {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return "api: " + e.Message
}

func serverError(status int, msg string) *APIError {
	if msg == "" {
		msg = "Erro no servidor"
	}
	return &APIError{Kind: KindServer, Status: status, Message: msg}
}

func noResponseError() *APIError {
	return &APIError{Kind: KindNoResponse, Message: "Não foi possível conectar ao servidor. Verifique sua conexão."}
}

func requestError() *APIError {
	return &APIError{Kind: KindRequest, Message: "Erro ao preparar a requisição"}
}
