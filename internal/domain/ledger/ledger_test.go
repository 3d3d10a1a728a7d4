package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// mov construye un movimiento con offset de minutos sobre t0.
func mov(id, movType string, qty, minutes int) entity.StockMovement {
	return entity.StockMovement{
		ID:        id,
		ProductID: "p1",
		Type:      movType,
		Quantity:  qty,
		CreatedAt: t0.Add(time.Duration(minutes) * time.Minute),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_INSuma(t *testing.T) {
	stock, err := ledger.Apply(10, entity.MovementTypeIN, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, stock)
}

func TestApply_OUTResta(t *testing.T) {
	stock, err := ledger.Apply(10, entity.MovementTypeOUT, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, stock)
}

func TestApply_OUTExacto_DejaCero(t *testing.T) {
	stock, err := ledger.Apply(5, entity.MovementTypeOUT, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)
}

func TestApply_OUTInsuficiente_Rechazado(t *testing.T) {
	stock, err := ledger.Apply(3, entity.MovementTypeOUT, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, stock, "el stock no debe cambiar cuando el OUT se rechaza")
}

func TestApply_ADJUSTFijaAbsoluto(t *testing.T) {
	stock, err := ledger.Apply(99, entity.MovementTypeADJUST, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, stock, "ADJUST descarta el acumulado anterior")
}

func TestApply_TipoDesconocido_Rechazado(t *testing.T) {
	_, err := ledger.Apply(10, "TRANSFER", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reverse
// ──────────────────────────────────────────────────────────────────────────────

func TestReverse_INyOUT_SonExactos(t *testing.T) {
	reversed, ok := ledger.Reverse(15, entity.MovementTypeIN, 5)
	assert.True(t, ok)
	assert.Equal(t, 10, reversed)

	reversed, ok = ledger.Reverse(6, entity.MovementTypeOUT, 4)
	assert.True(t, ok)
	assert.Equal(t, 10, reversed)
}

func TestReverse_ADJUST_NoTieneInversa(t *testing.T) {
	_, ok := ledger.Reverse(7, entity.MovementTypeADJUST, 7)
	assert.False(t, ok, "ADJUST es lossy: exige recomputar por replay")
}

// ──────────────────────────────────────────────────────────────────────────────
// Replay
// ──────────────────────────────────────────────────────────────────────────────

func TestReplay_LedgerVacio_DaCero(t *testing.T) {
	assert.Equal(t, 0, ledger.Replay(nil))
}

func TestReplay_SecuenciaMixta(t *testing.T) {
	movimientos := []entity.StockMovement{
		mov("a", entity.MovementTypeIN, 100, 0),
		mov("b", entity.MovementTypeOUT, 30, 1),
		mov("c", entity.MovementTypeADJUST, 40, 2),
		mov("d", entity.MovementTypeOUT, 5, 3),
	}
	assert.Equal(t, 35, ledger.Replay(movimientos))
}

func TestReplay_ADJUSTDescartaHistoriaAnterior(t *testing.T) {
	movimientos := []entity.StockMovement{
		mov("a", entity.MovementTypeIN, 10, 0),
		mov("b", entity.MovementTypeADJUST, 50, 1),
	}
	assert.Equal(t, 50, ledger.Replay(movimientos))
}

func TestReplay_OrdenDeEntradaNoImporta(t *testing.T) {
	// El replay ordena por (created_at, id): el resultado no depende del
	// orden del slice de entrada.
	a := mov("a", entity.MovementTypeIN, 10, 0)
	b := mov("b", entity.MovementTypeADJUST, 50, 1)
	c := mov("c", entity.MovementTypeOUT, 5, 2)

	assert.Equal(t, 45, ledger.Replay([]entity.StockMovement{a, b, c}))
	assert.Equal(t, 45, ledger.Replay([]entity.StockMovement{c, a, b}))
	assert.Equal(t, 45, ledger.Replay([]entity.StockMovement{b, c, a}))
}

func TestReplay_TimestampsIguales_DesempataPorID(t *testing.T) {
	// Mismo created_at: el ID ordena. "a" (ADJUST 50) va antes que "b" (IN 10).
	a := mov("a", entity.MovementTypeADJUST, 50, 0)
	b := mov("b", entity.MovementTypeIN, 10, 0)
	assert.Equal(t, 60, ledger.Replay([]entity.StockMovement{b, a}))
}

func TestReplay_OUTHuerfano_RecortaACero(t *testing.T) {
	// Queda un OUT sin el IN que lo respaldaba: el parcial va negativo y el
	// resultado final se recorta a cero.
	movimientos := []entity.StockMovement{
		mov("b", entity.MovementTypeOUT, 5, 1),
	}
	assert.Equal(t, 0, ledger.Replay(movimientos))
}

func TestReplay_ParcialNegativoRecuperadoPorADJUST(t *testing.T) {
	// El recorte a cero es solo sobre el resultado final: un parcial negativo
	// seguido de un ADJUST no se pierde.
	movimientos := []entity.StockMovement{
		mov("a", entity.MovementTypeOUT, 5, 0),
		mov("b", entity.MovementTypeADJUST, 20, 1),
	}
	assert.Equal(t, 20, ledger.Replay(movimientos))
}

func TestReplay_EsIdempotente(t *testing.T) {
	movimientos := []entity.StockMovement{
		mov("a", entity.MovementTypeIN, 10, 0),
		mov("b", entity.MovementTypeOUT, 3, 1),
		mov("c", entity.MovementTypeADJUST, 8, 2),
	}
	first := ledger.Replay(movimientos)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ledger.Replay(movimientos))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// IsLast / Excluding
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLast(t *testing.T) {
	movimientos := []entity.StockMovement{
		mov("a", entity.MovementTypeIN, 10, 0),
		mov("b", entity.MovementTypeOUT, 3, 1),
	}
	assert.True(t, ledger.IsLast(movimientos, "b"))
	assert.False(t, ledger.IsLast(movimientos, "a"))
	assert.False(t, ledger.IsLast(nil, "a"))
}

func TestExcluding(t *testing.T) {
	movimientos := []entity.StockMovement{
		mov("a", entity.MovementTypeIN, 10, 0),
		mov("b", entity.MovementTypeOUT, 3, 1),
	}
	rest := ledger.Excluding(movimientos, "a")
	require.Len(t, rest, 1)
	assert.Equal(t, "b", rest[0].ID)
}
