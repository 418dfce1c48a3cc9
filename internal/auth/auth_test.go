package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/five82/enlace/internal/delay"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPhaseAt(t *testing.T) {
	cases := []struct {
		progress float64
		want     Phase
	}{
		{0, PhaseStart},
		{20, PhaseStart},
		{20.1, PhaseVerifyingRUT},
		{40, PhaseVerifyingRUT},
		{40.5, PhaseValidating},
		{65, PhaseValidating},
		{65.2, PhaseLoading},
		{94.9, PhaseLoading},
		{95, PhaseGranted},
		{100, PhaseGranted},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PhaseAt(tc.progress), "progress %.1f", tc.progress)
	}
}

func TestProgress(t *testing.T) {
	total := 8 * time.Second
	assert.Equal(t, 0.0, Progress(-time.Second, total))
	assert.Equal(t, 25.0, Progress(2*time.Second, total))
	assert.Equal(t, 100.0, Progress(9*time.Second, total))
	assert.Equal(t, 100.0, Progress(time.Second, 0))
}

func TestSteps(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, "Verificando RUT", steps[0])
	assert.Equal(t, "Acceso concedido", steps[3])
}

func TestLogin_RequiresBothFields(t *testing.T) {
	l := NewLogin(context.Background(), time.Millisecond, nil)

	_, err := l.Submit("12345678", "  ")
	require.ErrorIs(t, err, ErrRequired)
	assert.Contains(t, err.Error(), "clave")
	assert.False(t, l.InProgress())

	_, err = l.Submit("", "")
	require.ErrorIs(t, err, ErrRequired)
	assert.Contains(t, err.Error(), "rut, clave")
}

func TestLogin_AlwaysSucceedsAfterDelay(t *testing.T) {
	l := NewLogin(context.Background(), 2*time.Millisecond, nil)

	cmd, err := l.Submit("12345678", "anything")
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.True(t, l.InProgress())

	msg, ok := cmd().(delay.ExpiredMsg)
	require.True(t, ok)
	assert.True(t, l.Owns(msg))
	assert.Equal(t, PhaseGranted, l.Phase())

	done, ok := l.Complete(msg)
	require.True(t, ok)
	assert.NotEqual(t, done.Session.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, l.InProgress())
}

func TestLogin_ResubmitWhileRunningIsIgnored(t *testing.T) {
	l := NewLogin(context.Background(), time.Hour, nil)
	first, err := l.Submit("1", "x")
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := l.Submit("1", "x")
	require.NoError(t, err)
	assert.Nil(t, again)

	l.Close()
	assert.Nil(t, first())
	assert.False(t, l.InProgress())
	assert.Zero(t, l.Progress())
}

func TestLogin_StaleExpiryIgnored(t *testing.T) {
	l := NewLogin(context.Background(), time.Hour, nil)
	_, ok := l.Complete(delay.ExpiredMsg{})
	assert.False(t, ok)
}

func TestRecovery(t *testing.T) {
	var r Recovery
	require.ErrorIs(t, r.Recover(" "), ErrRequired)
	assert.False(t, r.Submitted())

	require.NoError(t, r.Recover(" 12345678 "))
	assert.True(t, r.Submitted())
	assert.Equal(t, "12345678", r.Identifier())

	r.Reset()
	assert.False(t, r.Submitted())
	assert.Empty(t, r.Identifier())
}
