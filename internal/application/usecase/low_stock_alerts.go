package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

// DefaultAlertWindowDays ventana de actividad reciente para las alertas de bajo stock.
const DefaultAlertWindowDays = 30

// LowStockAlertsUseCase arma las alertas de bajo stock de una empresa: filas bajo
// umbral con ventas recientes, enriquecidas con proveedor principal y proyección
// de días hasta quiebre de stock.
type LowStockAlertsUseCase struct {
	alertRepo  repository.AlertRepository
	windowDays int
}

// NewLowStockAlertsUseCase construye el caso de uso. windowDays <= 0 usa el default (30).
func NewLowStockAlertsUseCase(alertRepo repository.AlertRepository, windowDays int) *LowStockAlertsUseCase {
	if windowDays <= 0 {
		windowDays = DefaultAlertWindowDays
	}
	return &LowStockAlertsUseCase{alertRepo: alertRepo, windowDays: windowDays}
}

// List devuelve las alertas de la empresa. Una empresa desconocida o sin inventario
// que califique produce {alerts: [], total_alerts: 0}, nunca un error.
// Las lecturas de consumo por alerta no están dentro de una misma transacción de
// lectura: cada consulta es un snapshot consistente por sí sola.
func (uc *LowStockAlertsUseCase) List(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	since := time.Now().UTC().AddDate(0, 0, -uc.windowDays)

	rows, err := uc.alertRepo.ListLowStock(ctx, companyID, since)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		alert := dto.LowStockAlertDTO{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			SKU:           row.SKU,
			WarehouseID:   row.WarehouseID,
			WarehouseName: row.WarehouseName,
			CurrentStock:  row.Quantity,
			Threshold:     row.ReorderThreshold,
		}

		outflow, err := uc.alertRepo.OutflowSince(ctx, row.InventoryID, since)
		if err != nil {
			return nil, err
		}
		alert.DaysUntilStockout = stockoutDays(row.Quantity, outflow, uc.windowDays)

		if row.SupplierID != nil {
			name := ""
			if row.SupplierName != nil {
				name = *row.SupplierName
			}
			alert.Supplier = &dto.SupplierInfoDTO{
				ID:           *row.SupplierID,
				Name:         name,
				ContactEmail: row.SupplierEmail,
			}
		}

		alerts = append(alerts, alert)
	}

	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

// stockoutDays proyecta los días enteros hasta quiebre: floor(stock / consumo diario
// promedio). Devuelve nil si el consumo promedio no es > 0 (guarda contra división
// por cero aun cuando la selección garantiza al menos una salida en la ventana).
func stockoutDays(quantity int64, outflow decimal.Decimal, windowDays int) *int64 {
	avgDailyUsage := outflow.Div(decimal.NewFromInt(int64(windowDays)))
	if !avgDailyUsage.GreaterThan(decimal.Zero) {
		return nil
	}
	days := decimal.NewFromInt(quantity).Div(avgDailyUsage).IntPart()
	return &days
}
