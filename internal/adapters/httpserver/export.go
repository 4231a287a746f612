package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// exportarXLSX baja el listado completo de clientes como planilla.
func (s *Server) exportarXLSX(w http.ResponseWriter, r *http.Request) {
	clientes, err := s.buscas.Todos(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Clientes"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ClienteID", "Nome", "E-mail", "CPF", "Telefone", "Cidade", "Estado", "Ativo", "Tags", "Cadastro"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, c := range clientes {
		cidade, estado := "", ""
		if c.Endereco != nil {
			cidade, estado = c.Endereco.Cidade, c.Endereco.Estado
		}
		tags := ""
		if c.Metadata != nil {
			for i, t := range c.Metadata.Tags {
				if i > 0 {
					tags += ","
				}
				tags += t
			}
		}
		values := []any{
			c.ClienteID, c.Nome, c.Email, c.CPF, c.Telefone,
			cidade, estado, c.Ativo, tags,
			c.DataCadastro.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=clientes-%s.xlsx", time.Now().Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export xlsx")
	}
}
