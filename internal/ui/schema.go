package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/enlace/internal/records"
	"github.com/five82/enlace/internal/requests"
	"github.com/five82/enlace/internal/users"
)

// column is one table column.
type column[T any] struct {
	title string
	width int
	value func(T) string
	badge bool
}

// field is one detail row and form input. name matches the key reported by
// the record's Missing method.
type field[T any] struct {
	name    string
	label   string
	value   func(T) string
	set     func(*T, string) error
	options []string
}

type card struct {
	badge    string // initials or short code
	title    string
	subtitle string
	lines    []string
	status   string
}

type kpi struct {
	label string
	value int
}

type group struct {
	title   string
	buckets []records.Bucket
	percent bool
}

// schema describes how one record type is presented.
type schema[T records.Record] struct {
	title     string
	singular  string
	newTitle  string
	columns   []column[T]
	fields    []field[T]
	card      func(T) card
	line      func(T) (string, string)
	dashboard func([]T) ([]kpi, []group)
}

func setText[T any](p func(*T) *string) func(*T, string) error {
	return func(r *T, v string) error {
		*p(r) = strings.TrimSpace(v)
		return nil
	}
}

func userSchema() schema[users.User] {
	type U = users.User
	return schema[U]{
		title:    "Administración de Usuarios",
		singular: "usuario",
		newTitle: "Nuevo usuario",
		columns: []column[U]{
			{title: "RUT", width: 13, value: func(u U) string { return u.RUT }},
			{title: "Nombre", width: 24, value: func(u U) string { return u.Nombre }},
			{title: "Email", width: 30, value: func(u U) string { return u.Email }},
			{title: "Perfil", width: 14, value: func(u U) string { return u.Perfil }},
			{title: "Departamento", width: 20, value: func(u U) string { return u.Departamento }},
			{title: "Estado", width: 9, value: func(u U) string { return u.Estado }, badge: true},
		},
		fields: []field[U]{
			{name: "rut", label: "RUT", value: func(u U) string { return u.RUT }, set: setText(func(u *U) *string { return &u.RUT })},
			{name: "nombre", label: "Nombre", value: func(u U) string { return u.Nombre }, set: setText(func(u *U) *string { return &u.Nombre })},
			{name: "email", label: "Email", value: func(u U) string { return u.Email }, set: setText(func(u *U) *string { return &u.Email })},
			{name: "telefono", label: "Teléfono", value: func(u U) string { return u.Telefono }, set: setText(func(u *U) *string { return &u.Telefono })},
			{name: "empresa", label: "Empresa", value: func(u U) string { return u.Empresa }, set: setText(func(u *U) *string { return &u.Empresa })},
			{name: "perfil", label: "Perfil", value: func(u U) string { return u.Perfil }, set: setText(func(u *U) *string { return &u.Perfil }), options: users.Profiles},
			{name: "estado", label: "Estado", value: func(u U) string { return u.Estado }, set: setText(func(u *U) *string { return &u.Estado }), options: users.Estados},
			{name: "ubicacion", label: "Ubicación", value: func(u U) string { return u.Ubicacion }, set: setText(func(u *U) *string { return &u.Ubicacion })},
			{name: "departamento", label: "Departamento", value: func(u U) string { return u.Departamento }, set: setText(func(u *U) *string { return &u.Departamento }), options: users.Departments},
			{
				name: "ticketsAsignados", label: "Tickets asignados",
				value: func(u U) string { return strconv.Itoa(u.TicketsAsignados) },
				set: func(u *U, v string) error {
					v = strings.TrimSpace(v)
					if v == "" {
						u.TicketsAsignados = 0
						return nil
					}
					n, err := strconv.Atoi(v)
					if err != nil || n < 0 {
						return fmt.Errorf("tickets asignados debe ser un número")
					}
					u.TicketsAsignados = n
					return nil
				},
			},
			{name: "fechaIngreso", label: "Fecha de ingreso", value: func(u U) string { return u.FechaIngreso }, set: setText(func(u *U) *string { return &u.FechaIngreso })},
		},
		card: func(u U) card {
			return card{
				badge:    u.Initials(),
				title:    u.Nombre,
				subtitle: u.Perfil,
				lines:    []string{u.Email, u.Telefono, u.Departamento + " · " + u.Ubicacion},
				status:   u.Estado,
			}
		},
		line: func(u U) (string, string) {
			return u.Nombre, fmt.Sprintf("%s · %s · %d tickets", u.Email, u.Departamento, u.TicketsAsignados)
		},
		dashboard: func(all []U) ([]kpi, []group) {
			s := users.Summarize(all)
			return []kpi{
					{"Total usuarios", s.Total},
					{"Activos", s.Active},
					{"Inactivos", s.Inactive},
					{"Tickets asignados", s.Tickets},
				}, []group{
					{title: "Usuarios por departamento", buckets: s.ByDepartment},
					{title: "Distribución por perfil", buckets: s.ByProfile, percent: true},
				}
		},
	}
}

func requestSchema() schema[requests.Request] {
	type R = requests.Request
	return schema[R]{
		title:    "Solicitudes TI",
		singular: "solicitud",
		newTitle: "Nueva solicitud",
		columns: []column[R]{
			{title: "N° Solicitud", width: 14, value: func(r R) string { return r.NroSolicitud }},
			{title: "Título", width: 34, value: func(r R) string { return r.Titulo }},
			{title: "Usuario", width: 20, value: func(r R) string { return r.NombreUsuario }},
			{title: "Desarrollador", width: 20, value: func(r R) string { return r.Desarrollador }},
			{title: "Estado", width: 14, value: func(r R) string { return r.Estado }, badge: true},
			{title: "Prioridad", width: 9, value: func(r R) string { return r.Prioridad }, badge: true},
		},
		fields: []field[R]{
			{name: "nroSolicitud", label: "N° Solicitud", value: func(r R) string { return r.NroSolicitud }, set: setText(func(r *R) *string { return &r.NroSolicitud })},
			{name: "titulo", label: "Título", value: func(r R) string { return r.Titulo }, set: setText(func(r *R) *string { return &r.Titulo })},
			{name: "prioridad", label: "Prioridad", value: func(r R) string { return r.Prioridad }, set: setText(func(r *R) *string { return &r.Prioridad }), options: requests.Prioridades},
			{name: "tipoSolicitud", label: "Tipo de solicitud", value: func(r R) string { return r.TipoSolicitud }, set: setText(func(r *R) *string { return &r.TipoSolicitud }), options: requests.Tipos},
			{name: "area", label: "Área", value: func(r R) string { return r.Area }, set: setText(func(r *R) *string { return &r.Area })},
			{name: "estado", label: "Estado", value: func(r R) string { return r.Estado }, set: setText(func(r *R) *string { return &r.Estado }), options: requests.Estados},
			{name: "pasoA", label: "Paso a", value: func(r R) string { return r.PasoA }, set: setText(func(r *R) *string { return &r.PasoA }), options: requests.Ambientes},
			{name: "ambiente", label: "Ambiente", value: func(r R) string { return r.Ambiente }, set: setText(func(r *R) *string { return &r.Ambiente }), options: requests.Ambientes},
			{name: "nombreUsuario", label: "Usuario solicitante", value: func(r R) string { return r.NombreUsuario }, set: setText(func(r *R) *string { return &r.NombreUsuario })},
			{name: "desarrollador", label: "Desarrollador", value: func(r R) string { return r.Desarrollador }, set: setText(func(r *R) *string { return &r.Desarrollador })},
			{name: "fechaInicio", label: "Fecha inicio", value: func(r R) string { return r.FechaInicio }, set: setText(func(r *R) *string { return &r.FechaInicio })},
			{name: "fechaTermino", label: "Fecha término", value: func(r R) string { return r.FechaTermino }, set: setText(func(r *R) *string { return &r.FechaTermino })},
			{name: "fechaEstado", label: "Fecha estado", value: func(r R) string { return r.FechaEstado }, set: setText(func(r *R) *string { return &r.FechaEstado })},
		},
		card: func(r R) card {
			return card{
				badge:    r.Prioridad,
				title:    r.NroSolicitud,
				subtitle: r.Titulo,
				lines:    []string{"Usuario: " + r.NombreUsuario, "Dev: " + r.Desarrollador, "Inicio " + orDash(r.FechaInicio) + " · Término " + orDash(r.FechaTermino)},
				status:   r.Estado,
			}
		},
		line: func(r R) (string, string) {
			return r.NroSolicitud + "  " + r.Titulo, fmt.Sprintf("%s · %s · %s", r.Estado, r.Prioridad, r.Desarrollador)
		},
		dashboard: func(all []R) ([]kpi, []group) {
			s := requests.Summarize(all)
			return []kpi{
					{"Total solicitudes", s.Total},
					{"En desarrollo", s.Desarrollo},
					{"Terminadas", s.Terminadas},
					{"Prioridad alta", s.Alta},
				}, []group{
					{title: "Solicitudes por estado", buckets: s.ByEstado},
					{title: "Distribución por prioridad", buckets: s.ByPrioridad, percent: true},
				}
		},
	}
}
