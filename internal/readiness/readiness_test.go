package readiness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"uyumplast-system/pkg/constants"
)

func TestCalculateReadyMetrics(t *testing.T) {
	t.Run("сумма складывается из склада и производства", func(t *testing.T) {
		m := CalculateReadyMetrics(100, 30, 66)
		assert.Equal(t, 96.0, m.TotalReadyKg)
		assert.InDelta(t, 96.0, m.ReadyPercent, 0.0001)
		assert.True(t, m.IsReady)
	})

	t.Run("ниже порога 95 процентов - не готов", func(t *testing.T) {
		m := CalculateReadyMetrics(100, 30, 60)
		assert.Equal(t, 90.0, m.TotalReadyKg)
		assert.False(t, m.IsReady)
	})

	t.Run("ровно 95 процентов - готов", func(t *testing.T) {
		m := CalculateReadyMetrics(100, 50, 45)
		assert.True(t, m.IsReady)
	})

	t.Run("нулевое количество не даёт деления на ноль", func(t *testing.T) {
		m := CalculateReadyMetrics(0, 10, 10)
		assert.Equal(t, 20.0, m.TotalReadyKg)
		assert.Equal(t, 0.0, m.ReadyPercent)
		assert.False(t, m.IsReady)
	})

	t.Run("отрицательное и нечисловое количество", func(t *testing.T) {
		for _, q := range []float64{-5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			m := CalculateReadyMetrics(q, 100, 100)
			assert.False(t, m.IsReady)
			assert.Equal(t, 0.0, m.ReadyPercent)
		}
	})

	t.Run("totalReadyKg всегда равен s+p", func(t *testing.T) {
		cases := []struct{ q, s, p float64 }{
			{1, 0, 0}, {50, 12.5, 37.5}, {1000, 999, 0.5}, {3, 1, 1},
		}
		for _, c := range cases {
			m := CalculateReadyMetrics(c.q, c.s, c.p)
			assert.Equal(t, c.s+c.p, m.TotalReadyKg)
		}
	})
}

func TestDeriveOrderStatus(t *testing.T) {
	t.Run("готовность переводит активные статусы в ready", func(t *testing.T) {
		for _, cur := range []string{constants.StatusDraft, constants.StatusConfirmed, constants.StatusInProduction} {
			assert.Equal(t, constants.StatusReady, DeriveOrderStatus(cur, constants.SourceStock, true))
		}
	})

	t.Run("откат из ready зависит от источника материала", func(t *testing.T) {
		assert.Equal(t, constants.StatusInProduction, DeriveOrderStatus(constants.StatusReady, constants.SourceProduction, false))
		assert.Equal(t, constants.StatusConfirmed, DeriveOrderStatus(constants.StatusReady, constants.SourceStock, false))
		assert.Equal(t, constants.StatusConfirmed, DeriveOrderStatus(constants.StatusReady, constants.SourceBoth, false))
	})

	t.Run("финальные статусы не перезаписываются", func(t *testing.T) {
		for _, terminal := range constants.TerminalStatuses {
			for _, src := range []string{constants.SourceStock, constants.SourceProduction, constants.SourceBoth} {
				assert.Equal(t, terminal, DeriveOrderStatus(terminal, src, true))
				assert.Equal(t, terminal, DeriveOrderStatus(terminal, src, false))
			}
		}
	})

	t.Run("без изменений, если переход не определён", func(t *testing.T) {
		assert.Equal(t, constants.StatusConfirmed, DeriveOrderStatus(constants.StatusConfirmed, constants.SourceStock, false))
		assert.Equal(t, constants.StatusDraft, DeriveOrderStatus(constants.StatusDraft, constants.SourceBoth, false))
		assert.Equal(t, constants.StatusReady, DeriveOrderStatus(constants.StatusReady, constants.SourceStock, true))
	})
}
