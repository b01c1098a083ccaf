// Package report renders the monthly booking report as an Excel
// workbook: one sheet listing every booking, one sheet with the
// revenue and service summary.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"salonbook/internal/models"
	"salonbook/internal/schedule"
	"salonbook/internal/stats"
)

var bookingColumns = []string{"Date", "Start", "End", "Customer", "Service", "Price"}

// WriteMonth writes the report for the bookings of the YYYY-MM month
// to w. The caller is expected to pass a pre-filtered set; rows
// outside the month are skipped.
func WriteMonth(w io.Writer, bookings []models.Booking, month string) error {
	if len(month) != 7 {
		return fmt.Errorf("invalid month %q; expected YYYY-MM", month)
	}

	monthBookings := schedule.InMonth(bookings, month+"-01")

	f := excelize.NewFile()
	defer f.Close()

	if err := writeBookingsSheet(f, monthBookings, month); err != nil {
		return err
	}
	if err := writeSummarySheet(f, monthBookings); err != nil {
		return err
	}

	return f.Write(w)
}

func writeBookingsSheet(f *excelize.File, bookings []models.Booking, month string) error {
	sheet := "Bookings " + month
	f.SetSheetName("Sheet1", sheet)

	if err := writeRow(f, sheet, 1, toCells(bookingColumns)); err != nil {
		return err
	}
	if err := boldRow(f, sheet, 1, len(bookingColumns)); err != nil {
		return err
	}

	row := 2
	for _, group := range schedule.GroupByDate(bookings) {
		for _, b := range group.Bookings {
			cells := []interface{}{b.Date, b.StartTime, b.EndTime, b.CustomerName, b.Service.Name, b.Service.Price}
			if err := writeRow(f, sheet, row, cells); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, bookings []models.Booking) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	summary := stats.ServiceStats(bookings)
	rows := [][]interface{}{
		{"Total revenue", stats.SumRevenue(bookings)},
		{"Bookings", len(bookings)},
		{"Most booked", summary.MostBooked.Service, summary.MostBooked.Count},
		{"Most revenue", summary.MostRevenue.Service, summary.MostRevenue.Revenue},
	}
	for i, cells := range rows {
		if err := writeRow(f, sheet, i+1, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, val := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row, width int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil
	}
	startCell, _ := excelize.CoordinatesToCellName(1, row)
	endCell, _ := excelize.CoordinatesToCellName(width, row)
	return f.SetCellStyle(sheet, startCell, endCell, style)
}

func toCells(columns []string) []interface{} {
	out := make([]interface{}, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}
