// Пакет readiness считает готовность заказа по материалу (кг на складе +
// кг с производства) и выводит следующий статус заказа. Все функции чистые,
// без обращений к БД.
package readiness

import (
	"math"

	"uyumplast-system/pkg/constants"
)

// Порог готовности: заказ считается готовым к отгрузке от 95% материала.
const ReadyThresholdPercent = 95.0

// ReadyMetrics - производные показатели готовности. В БД не хранятся,
// пересчитываются при каждой мутации заказа.
type ReadyMetrics struct {
	TotalReadyKg float64 `json:"total_ready_kg"`
	ReadyPercent float64 `json:"ready_percent"`
	IsReady      bool    `json:"is_ready"`
}

// CalculateReadyMetrics считает готовность относительно запрошенного
// количества. При quantity <= 0 или нечисловом quantity возвращает 0% и
// не готов - NaN/Inf не должны попадать в БД.
func CalculateReadyMetrics(quantity, stockReadyKg, productionReadyKg float64) ReadyMetrics {
	total := stockReadyKg + productionReadyKg

	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return ReadyMetrics{TotalReadyKg: total, ReadyPercent: 0, IsReady: false}
	}

	percent := total / quantity * 100
	return ReadyMetrics{
		TotalReadyKg: total,
		ReadyPercent: percent,
		IsReady:      percent >= ReadyThresholdPercent,
	}
}

// DeriveOrderStatus выводит следующий статус заказа из текущего статуса,
// источника материала и флага готовности. Финальные статусы (отгружен,
// доставлен, отменён, закрыт) автоматика никогда не перезаписывает.
func DeriveOrderStatus(currentStatus, sourceType string, isReady bool) string {
	if constants.IsTerminalStatus(currentStatus) {
		return currentStatus
	}

	if isReady {
		switch currentStatus {
		case constants.StatusDraft, constants.StatusConfirmed, constants.StatusInProduction:
			return constants.StatusReady
		}
		return currentStatus
	}

	// Готовность упала ниже порога: откатываем "ready" в рабочий статус.
	if currentStatus == constants.StatusReady {
		if sourceType == constants.SourceProduction {
			return constants.StatusInProduction
		}
		return constants.StatusConfirmed
	}

	return currentStatus
}
