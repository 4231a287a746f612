package domain

import "fmt"

// ClienteNotFoundError: el clienteId (o el par campo/valor) no resuelve a
// ningún registro.
type ClienteNotFoundError struct {
	ClienteID string
	Campo     string
	Valor     string
}

func (e *ClienteNotFoundError) Error() string {
	if e.Campo != "" {
		return fmt.Sprintf("Cliente não encontrado com %s: %s", e.Campo, e.Valor)
	}
	return "Cliente não encontrado com ID: " + e.ClienteID
}

func NewClienteNotFound(clienteID string) *ClienteNotFoundError {
	return &ClienteNotFoundError{ClienteID: clienteID}
}

func NewClienteNotFoundPorCampo(campo, valor string) *ClienteNotFoundError {
	return &ClienteNotFoundError{Campo: campo, Valor: valor}
}

// ClienteAlreadyExistsError: conflicto de unicidad en CPF o e-mail.
type ClienteAlreadyExistsError struct {
	Campo string
	Valor string
}

func (e *ClienteAlreadyExistsError) Error() string {
	return fmt.Sprintf("Já existe um cliente cadastrado com %s: %s", e.Campo, e.Valor)
}

func NewClienteAlreadyExists(campo, valor string) *ClienteAlreadyExistsError {
	return &ClienteAlreadyExistsError{Campo: campo, Valor: valor}
}

// InvalidClienteError: los datos de entrada violan una regla de dominio.
type InvalidClienteError struct {
	Mensagem string
}

func (e *InvalidClienteError) Error() string {
	return e.Mensagem
}

func NewInvalidCliente(mensagem string) *InvalidClienteError {
	return &InvalidClienteError{Mensagem: mensagem}
}

func NewInvalidClienteCampo(campo, motivo string) *InvalidClienteError {
	return &InvalidClienteError{Mensagem: fmt.Sprintf("Campo '%s' inválido: %s", campo, motivo)}
}
