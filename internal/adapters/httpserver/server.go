package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/clientes/internal/domain"
	"github.com/phenrril/clientes/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	clientes *usecase.ClienteUC
	buscas   *usecase.BuscaUC
	validate *validator.Validate
}

func New(clientes *usecase.ClienteUC, buscas *usecase.BuscaUC) http.Handler {
	s := &Server{
		mux:      http.NewServeMux(),
		clientes: clientes,
		buscas:   buscas,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/v1/clientes", s.criar)
	s.mux.HandleFunc("GET /api/v1/clientes", s.listarTodos)
	s.mux.HandleFunc("GET /api/v1/clientes/ativos", s.listarAtivos)
	s.mux.HandleFunc("GET /api/v1/clientes/inativos", s.listarInativos)
	s.mux.HandleFunc("GET /api/v1/clientes/vip", s.listarVip)
	s.mux.HandleFunc("GET /api/v1/clientes/count/ativos", s.contarAtivos)
	s.mux.HandleFunc("GET /api/v1/clientes/export", s.exportarXLSX)
	s.mux.HandleFunc("GET /api/v1/clientes/cpf/{cpf}", s.buscarPorCPF)
	s.mux.HandleFunc("GET /api/v1/clientes/email/{email}", s.buscarPorEmail)
	s.mux.HandleFunc("GET /api/v1/clientes/cidade/{cidade}", s.listarPorCidade)
	s.mux.HandleFunc("GET /api/v1/clientes/tag/{tag}", s.listarPorTag)
	s.mux.HandleFunc("GET /api/v1/clientes/{clienteId}", s.buscarPorID)
	s.mux.HandleFunc("PUT /api/v1/clientes/{clienteId}", s.atualizar)
	s.mux.HandleFunc("PATCH /api/v1/clientes/{clienteId}/desativar", s.desativar)
	s.mux.HandleFunc("PATCH /api/v1/clientes/{clienteId}/reativar", s.reativar)
	s.mux.HandleFunc("DELETE /api/v1/clientes/{clienteId}", s.deletar)
}

func (s *Server) criar(w http.ResponseWriter, r *http.Request) {
	dto, ok := s.decodeCliente(w, r)
	if !ok {
		return
	}

	created, err := s.clientes.Create(r.Context(), toDomainCliente(dto))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClienteDTO(created))
}

func (s *Server) atualizar(w http.ResponseWriter, r *http.Request) {
	clienteID := r.PathValue("clienteId")

	dto, ok := s.decodeCliente(w, r)
	if !ok {
		return
	}

	updated, err := s.clientes.Update(r.Context(), clienteID, toDomainCliente(dto))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClienteDTO(updated))
}

func (s *Server) desativar(w http.ResponseWriter, r *http.Request) {
	if err := s.clientes.Desativar(r.Context(), r.PathValue("clienteId")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) reativar(w http.ResponseWriter, r *http.Request) {
	if err := s.clientes.Reativar(r.Context(), r.PathValue("clienteId")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deletar(w http.ResponseWriter, r *http.Request) {
	clienteID := r.PathValue("clienteId")
	log.Warn().Str("cliente_id", clienteID).Msg("delete permanente de cliente")

	if err := s.clientes.Deletar(r.Context(), clienteID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) buscarPorID(w http.ResponseWriter, r *http.Request) {
	c, err := s.buscas.PorClienteID(r.Context(), r.PathValue("clienteId"))
	s.writeLookup(w, r, c, err)
}

func (s *Server) buscarPorCPF(w http.ResponseWriter, r *http.Request) {
	c, err := s.buscas.PorCPF(r.Context(), r.PathValue("cpf"))
	s.writeLookup(w, r, c, err)
}

func (s *Server) buscarPorEmail(w http.ResponseWriter, r *http.Request) {
	c, err := s.buscas.PorEmail(r.Context(), r.PathValue("email"))
	s.writeLookup(w, r, c, err)
}

func (s *Server) listarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := s.buscas.Todos(r.Context())
	s.writeList(w, r, list, err)
}

func (s *Server) listarAtivos(w http.ResponseWriter, r *http.Request) {
	list, err := s.buscas.Ativos(r.Context())
	s.writeList(w, r, list, err)
}

func (s *Server) listarInativos(w http.ResponseWriter, r *http.Request) {
	list, err := s.buscas.Inativos(r.Context())
	s.writeList(w, r, list, err)
}

// listarPorCidade sin ?estado= devuelve los activos de la ciudad; con
// ?estado= filtra por ciudad y estado sin mirar el flag ativo.
func (s *Server) listarPorCidade(w http.ResponseWriter, r *http.Request) {
	cidade := r.PathValue("cidade")
	if estado := r.URL.Query().Get("estado"); estado != "" {
		list, err := s.buscas.PorCidadeEEstado(r.Context(), cidade, estado)
		s.writeList(w, r, list, err)
		return
	}
	list, err := s.buscas.PorCidade(r.Context(), cidade)
	s.writeList(w, r, list, err)
}

func (s *Server) listarPorTag(w http.ResponseWriter, r *http.Request) {
	list, err := s.buscas.PorTag(r.Context(), r.PathValue("tag"))
	s.writeList(w, r, list, err)
}

func (s *Server) listarVip(w http.ResponseWriter, r *http.Request) {
	list, err := s.buscas.VipAtivos(r.Context())
	s.writeList(w, r, list, err)
}

func (s *Server) contarAtivos(w http.ResponseWriter, r *http.Request) {
	total, err := s.buscas.ContarAtivos(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"total": total})
}

// decodeCliente parsea y valida la forma del body. Devuelve false cuando ya
// respondió el error.
func (s *Server) decodeCliente(w http.ResponseWriter, r *http.Request) (*ClienteDTO, bool) {
	var dto ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeJSON(w, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "Bad Request", "JSON inválido", r.URL.Path))
		return nil, false
	}
	if err := s.validate.Struct(&dto); err != nil {
		resp := newErrorResponse(http.StatusBadRequest, "Validation Error", "Erro de validação nos campos", r.URL.Path)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				resp.FieldErrors = append(resp.FieldErrors, fieldError{Field: fe.Field(), Reason: fe.Tag()})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return nil, false
	}
	return &dto, true
}

func (s *Server) writeLookup(w http.ResponseWriter, r *http.Request, c *domain.Cliente, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if c == nil {
		writeJSON(w, http.StatusNotFound, newErrorResponse(http.StatusNotFound, "Not Found", "Cliente não encontrado", r.URL.Path))
		return
	}
	writeJSON(w, http.StatusOK, toClienteDTO(c))
}

func (s *Server) writeList(w http.ResponseWriter, r *http.Request, clientes []domain.Cliente, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClienteDTOs(clientes))
}

type errorResponse struct {
	Status      int          `json:"status"`
	Error       string       `json:"error"`
	Message     string       `json:"message"`
	Path        string       `json:"path"`
	Timestamp   time.Time    `json:"timestamp"`
	FieldErrors []fieldError `json:"fieldErrors,omitempty"`
}

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func newErrorResponse(status int, errLabel, message, path string) *errorResponse {
	return &errorResponse{
		Status:    status,
		Error:     errLabel,
		Message:   message,
		Path:      path,
		Timestamp: time.Now(),
	}
}

// writeError traduce los errores de dominio a status codes; cualquier otra
// cosa es un 500 con mensaje genérico.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.ClienteNotFoundError
	var conflict *domain.ClienteAlreadyExistsError
	var invalid *domain.InvalidClienteError

	switch {
	case errors.As(err, &notFound):
		log.Warn().Str("path", r.URL.Path).Msg(err.Error())
		writeJSON(w, http.StatusNotFound, newErrorResponse(http.StatusNotFound, "Not Found", err.Error(), r.URL.Path))
	case errors.As(err, &conflict):
		log.Warn().Str("path", r.URL.Path).Msg(err.Error())
		writeJSON(w, http.StatusConflict, newErrorResponse(http.StatusConflict, "Conflict", err.Error(), r.URL.Path))
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "Bad Request", err.Error(), r.URL.Path))
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("error interno")
		writeJSON(w, http.StatusInternalServerError, newErrorResponse(http.StatusInternalServerError, "Internal Server Error", "Ocorreu um erro interno no servidor", r.URL.Path))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
