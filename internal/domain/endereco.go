package domain

import "regexp"

var (
	cepRe    = regexp.MustCompile(`^\d{8}$`)
	estadoRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Endereco es un value object. Los predicados de validez son consultivos:
// la entidad no los exige, los usa la capa de transporte.
type Endereco struct {
	Rua         string
	Numero      string
	Complemento string
	Bairro      string
	Cidade      string
	Estado      string
	CEP         string
}

func (e *Endereco) IsCompleto() bool {
	return e.Rua != "" && e.Numero != "" && e.Cidade != "" && e.Estado != "" && e.CEP != ""
}

func (e *Endereco) IsCEPValido() bool {
	return cepRe.MatchString(e.CEP)
}

func (e *Endereco) IsEstadoValido() bool {
	return estadoRe.MatchString(e.Estado)
}

// FormatarCEP devuelve NNNNN-NNN sólo cuando el CEP crudo es válido;
// si no, devuelve el valor tal cual (incluso vacío).
func (e *Endereco) FormatarCEP() string {
	if e.IsCEPValido() {
		return e.CEP[:5] + "-" + e.CEP[5:]
	}
	return e.CEP
}
