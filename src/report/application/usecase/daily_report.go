package usecase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"pdv/src/payment/domain/port"
	"pdv/src/report/application/response"
)

// DailyReportUseCase arma el resumen de la jornada a partir de los pagos
// registrados en el back-office, y lo exporta a planilla para el cierre
type DailyReportUseCase struct {
	payments port.PaymentGateway
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(payments port.PaymentGateway) *DailyReportUseCase {
	return &DailyReportUseCase{payments: payments}
}

// Execute arma el resumen del día: pagos, totales por método y total general
func (uc *DailyReportUseCase) Execute(authToken string) (*response.TodayReport, error) {
	payments, err := uc.payments.TodayPayments(authToken)
	if err != nil {
		return nil, fmt.Errorf("error loading today payments: %w", err)
	}

	total, err := uc.payments.TodayTotal(authToken)
	if err != nil {
		return nil, fmt.Errorf("error loading today total: %w", err)
	}

	byMethod := map[string]*response.MethodTotal{}
	salesSeen := map[int64]bool{}
	for _, payment := range payments {
		entry, ok := byMethod[payment.PaymentMethod]
		if !ok {
			entry = &response.MethodTotal{Method: payment.PaymentMethod, Total: decimal.Zero}
			byMethod[payment.PaymentMethod] = entry
		}
		entry.Count++
		entry.Total = entry.Total.Add(payment.AmountPaid)
		salesSeen[payment.SaleID] = true
	}

	methods := make([]response.MethodTotal, 0, len(byMethod))
	for _, entry := range byMethod {
		methods = append(methods, *entry)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Method < methods[j].Method })

	return &response.TodayReport{
		Payments:  payments,
		ByMethod:  methods,
		Total:     total,
		SalesPaid: len(salesSeen),
	}, nil
}

// ExportXLSX genera la planilla del cierre del día
func (uc *DailyReportUseCase) ExportXLSX(authToken string) (*excelize.File, error) {
	report, err := uc.Execute(authToken)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := "Pagos del día"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("error removing default sheet: %w", err)
	}

	headers := []string{"Venta", "Método", "Monto", "Vuelto", "Fecha"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("error writing header: %w", err)
		}
	}

	for row, payment := range report.Payments {
		values := []interface{}{
			payment.SaleID,
			payment.PaymentMethod,
			payment.AmountPaid.InexactFloat64(),
			payment.ChangeAmount.InexactFloat64(),
			payment.PaymentDate.Format("02/01/2006 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("error writing row: %w", err)
			}
		}
	}

	// Resumen por método al pie, separado por una fila en blanco
	base := len(report.Payments) + 3
	for idx, method := range report.ByMethod {
		methodCell, _ := excelize.CoordinatesToCellName(1, base+idx)
		totalCell, _ := excelize.CoordinatesToCellName(3, base+idx)
		if err := file.SetCellValue(sheet, methodCell, method.Method); err != nil {
			return nil, fmt.Errorf("error writing summary: %w", err)
		}
		if err := file.SetCellValue(sheet, totalCell, method.Total.InexactFloat64()); err != nil {
			return nil, fmt.Errorf("error writing summary: %w", err)
		}
	}

	totalLabelCell, _ := excelize.CoordinatesToCellName(1, base+len(report.ByMethod))
	totalValueCell, _ := excelize.CoordinatesToCellName(3, base+len(report.ByMethod))
	if err := file.SetCellValue(sheet, totalLabelCell, "TOTAL"); err != nil {
		return nil, fmt.Errorf("error writing total: %w", err)
	}
	if err := file.SetCellValue(sheet, totalValueCell, report.Total.InexactFloat64()); err != nil {
		return nil, fmt.Errorf("error writing total: %w", err)
	}

	return file, nil
}
