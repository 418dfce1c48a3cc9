// Package requests defines the IT-request records tracked by Enlace.
package requests

import (
	"strings"

	"go.uber.org/zap"

	"github.com/five82/enlace/internal/records"
)

// Estado values with dashboard meaning.
const (
	EstadoDesarrollo    = "EN DESARROLLO"
	EstadoTerminado     = "TERMINADO"
	EstadoCertificacion = "CERTIFICACION"
	EstadoConfiguracion = "GESTION CONFIGURACION"
)

// Prioridad values.
const (
	PrioridadAlta  = "Alta"
	PrioridadMedia = "Media"
	PrioridadBaja  = "Baja"
)

// Option lists offered by the form.
var (
	Estados     = []string{EstadoDesarrollo, EstadoCertificacion, EstadoConfiguracion, EstadoTerminado}
	Prioridades = []string{PrioridadAlta, PrioridadMedia, PrioridadBaja}
	Tipos       = []string{"NUEVO DESARROLLO", "CORRECCION DE PROGRAMA", "MEJORA DE PERFORMANCE"}
	Ambientes   = []string{"DESARROLLO", "CERTIFICACION", "CORPORATIVO", "PRODUCCION", "Ninguno"}
)

// Request is an IT change request.
type Request struct {
	ID            int
	NroSolicitud  string
	Titulo        string
	FechaInicio   string
	FechaTermino  string
	Estado        string
	FechaEstado   string
	NombreUsuario string
	Desarrollador string
	TipoSolicitud string
	Area          string
	PasoA         string
	Ambiente      string
	Prioridad     string
}

// RecordID implements records.Record.
func (r Request) RecordID() int { return r.ID }

// SearchFields implements records.Record.
func (r Request) SearchFields() []string {
	return []string{r.NroSolicitud, r.Titulo, r.NombreUsuario, r.Desarrollador}
}

// Missing implements records.Record.
func (r Request) Missing() []string {
	var out []string
	for _, f := range []struct{ name, value string }{
		{"nroSolicitud", r.NroSolicitud},
		{"prioridad", r.Prioridad},
		{"titulo", r.Titulo},
		{"tipoSolicitud", r.TipoSolicitud},
		{"area", r.Area},
		{"estado", r.Estado},
		{"pasoA", r.PasoA},
		{"nombreUsuario", r.NombreUsuario},
		{"desarrollador", r.Desarrollador},
	} {
		if strings.TrimSpace(f.value) == "" {
			out = append(out, f.name)
		}
	}
	return out
}

// Invalid implements records.Constrained.
func (r Request) Invalid() []string {
	var out []string
	for _, f := range []struct {
		name, value string
		options     []string
	}{
		{"prioridad", r.Prioridad, Prioridades},
		{"tipoSolicitud", r.TipoSolicitud, Tipos},
		{"estado", r.Estado, Estados},
		{"pasoA", r.PasoA, Ambientes},
		{"ambiente", r.Ambiente, Ambientes},
	} {
		if !records.OneOf(f.value, f.options) {
			out = append(out, f.name)
		}
	}
	return out
}

// Open reports whether the request has no end date yet.
func (r Request) Open() bool {
	end := strings.TrimSpace(r.FechaTermino)
	return end == "" || end == "//"
}

// Blank returns the form defaults for a new request.
func Blank() Request {
	return Request{
		Estado:        EstadoDesarrollo,
		TipoSolicitud: "NUEVO DESARROLLO",
		Area:          "INFORMATICA",
		PasoA:         "DESARROLLO",
		Ambiente:      "DESARROLLO",
		Prioridad:     PrioridadMedia,
	}
}

func withID(r Request, id int) Request {
	r.ID = id
	return r
}

// NewModule returns the IT-request module seeded with Seed.
func NewModule(logger *zap.Logger) *records.Module[Request] {
	return records.NewModule("it-requests", records.NewCollection(Seed(), withID), Blank, logger)
}

// Stats are the dashboard aggregates.
type Stats struct {
	Total       int
	Desarrollo  int
	Terminadas  int
	Alta        int
	ByEstado    []records.Bucket
	ByPrioridad []records.Bucket
}

// Summarize computes dashboard aggregates over all requests.
func Summarize(all []Request) Stats {
	return Stats{
		Total:       len(all),
		Desarrollo:  records.Count(all, func(r Request) bool { return r.Estado == EstadoDesarrollo }),
		Terminadas:  records.Count(all, func(r Request) bool { return r.Estado == EstadoTerminado }),
		Alta:        records.Count(all, func(r Request) bool { return r.Prioridad == PrioridadAlta }),
		ByEstado:    records.Tally(all, func(r Request) string { return r.Estado }),
		ByPrioridad: records.Tally(all, func(r Request) string { return r.Prioridad }),
	}
}
