// Package users defines the user-administration records and their seed data.
package users

import (
	"strings"

	"go.uber.org/zap"

	"github.com/five82/enlace/internal/records"
)

// Estado values.
const (
	Active   = "Activo"
	Inactive = "Inactivo"
)

// User is a portal account managed by the administration module.
type User struct {
	ID               int
	RUT              string
	Nombre           string
	Email            string
	Telefono         string
	Empresa          string
	Perfil           string
	Estado           string
	Ubicacion        string
	Departamento     string
	TicketsAsignados int
	FechaIngreso     string
}

// RecordID implements records.Record.
func (u User) RecordID() int { return u.ID }

// SearchFields implements records.Record.
func (u User) SearchFields() []string {
	return []string{u.Nombre, u.Email, u.RUT, u.Departamento}
}

// Missing implements records.Record.
func (u User) Missing() []string {
	var out []string
	for _, f := range []struct{ name, value string }{
		{"rut", u.RUT},
		{"nombre", u.Nombre},
		{"email", u.Email},
		{"telefono", u.Telefono},
		{"perfil", u.Perfil},
		{"departamento", u.Departamento},
	} {
		if strings.TrimSpace(f.value) == "" {
			out = append(out, f.name)
		}
	}
	return out
}

// Invalid implements records.Constrained.
func (u User) Invalid() []string {
	var out []string
	if !records.OneOf(u.Perfil, Profiles) {
		out = append(out, "perfil")
	}
	if !records.OneOf(u.Estado, Estados) {
		out = append(out, "estado")
	}
	if !records.OneOf(u.Departamento, Departments) {
		out = append(out, "departamento")
	}
	return out
}

// Initials returns the first letters of the first and last words of the name.
func (u User) Initials() string {
	names := strings.Fields(u.Nombre)
	switch {
	case len(names) >= 2:
		first := []rune(names[0])
		last := []rune(names[len(names)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	case len(names) == 1:
		r := []rune(names[0])
		return strings.ToUpper(string(r[:min(2, len(r))]))
	}
	return ""
}

// Blank returns the form defaults for a new user.
func Blank() User {
	return User{
		Empresa:      "CHUBB Seguros",
		Perfil:       "Usuario",
		Estado:       Active,
		Departamento: "Tecnología",
	}
}

// Profiles and Departments list the values offered by the form.
var (
	Profiles    = []string{"Administrador", "Supervisor", "Usuario"}
	Departments = []string{"Tecnología", "Operaciones", "Siniestros", "Soporte Técnico", "Ventas", "Atención al Cliente"}
	Estados     = []string{Active, Inactive}
)

func withID(u User, id int) User {
	u.ID = id
	return u
}

// NewModule returns the user-administration module seeded with Seed.
func NewModule(logger *zap.Logger) *records.Module[User] {
	return records.NewModule("users", records.NewCollection(Seed(), withID), Blank, logger)
}

// Stats are the dashboard aggregates.
type Stats struct {
	Total        int
	Active       int
	Inactive     int
	Tickets      int
	ByDepartment []records.Bucket
	ByProfile    []records.Bucket
}

// Summarize computes dashboard aggregates over all users.
func Summarize(all []User) Stats {
	s := Stats{
		Total:        len(all),
		Active:       records.Count(all, func(u User) bool { return u.Estado == Active }),
		Inactive:     records.Count(all, func(u User) bool { return u.Estado == Inactive }),
		ByDepartment: records.Tally(all, func(u User) string { return u.Departamento }),
		ByProfile:    records.Tally(all, func(u User) string { return u.Perfil }),
	}
	for _, u := range all {
		s.Tickets += u.TicketsAsignados
	}
	return s
}
