package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/enlace/internal/records"
)

func TestSearch(t *testing.T) {
	m := NewModule(nil)

	m.Search("req-2024-38")
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, 3, m.Visible()[0].ID)

	m.Search("DASHBOARD")
	assert.Len(t, m.Visible(), 2, "title match ignores case")

	m.Search("Sofía")
	require.Len(t, m.Visible(), 1, "developer is searchable")

	m.Search("CORPORATIVO")
	assert.Empty(t, m.Visible(), "environment is not a search field")

	m.Search("")
	assert.Equal(t, Seed(), m.Visible())
}

func TestEditAndDelete(t *testing.T) {
	m := NewModule(nil)
	require.NoError(t, m.Select(5))
	r, err := m.Edit()
	require.NoError(t, err)

	r.Estado = EstadoCertificacion
	_, err = m.Save(r)
	require.NoError(t, err)
	got, ok := m.Collection().Get(5)
	require.True(t, ok)
	assert.Equal(t, EstadoCertificacion, got.Estado)

	require.NoError(t, m.Select(5))
	require.NoError(t, m.RequestDelete())
	require.NoError(t, m.ConfirmDelete(true))
	assert.Equal(t, 5, m.Collection().Len())
}

func TestSave_RequiredFields(t *testing.T) {
	m := NewModule(nil)
	blank := m.New()
	_, err := m.Save(blank)
	require.ErrorIs(t, err, records.ErrRequired)
	assert.Contains(t, err.Error(), "nroSolicitud")
	assert.NotContains(t, err.Error(), "prioridad")
}

func TestSave_RejectsValuesOutsideOptions(t *testing.T) {
	m := NewModule(nil)
	require.NoError(t, m.Select(3))
	r, err := m.Edit()
	require.NoError(t, err)

	r.Prioridad = "Urgente"
	r.Ambiente = "QA"
	_, err = m.Save(r)
	require.ErrorIs(t, err, records.ErrInvalid)
	assert.Contains(t, err.Error(), "prioridad, ambiente")
	assert.Equal(t, 3, Summarize(m.Collection().All()).Alta)
}

func TestSeedValuesAreWithinOptions(t *testing.T) {
	for _, r := range Seed() {
		assert.Empty(t, r.Invalid(), "request %d", r.ID)
	}
	assert.Empty(t, Blank().Invalid())
}

func TestSummarize(t *testing.T) {
	s := Summarize(Seed())
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Desarrollo)
	assert.Equal(t, 2, s.Terminadas)
	assert.Equal(t, 3, s.Alta)
	require.Len(t, s.ByEstado, 4)
	assert.Equal(t, EstadoTerminado, s.ByEstado[0].Key)
	assert.Equal(t, EstadoDesarrollo, s.ByEstado[1].Key)
	assert.Equal(t, 50.0, s.ByPrioridad[0].Percent)
}

func TestOpen(t *testing.T) {
	assert.True(t, Request{FechaTermino: "//"}.Open())
	assert.False(t, Request{FechaTermino: "15/04/24"}.Open())
}
