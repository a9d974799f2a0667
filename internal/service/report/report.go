package report

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"mill-backend/internal/constants"
	"mill-backend/internal/service/aggregate"
	"mill-backend/internal/storage"
)

type ReportStorage interface {
	ListProductionByMonth(ctx context.Context, monthPrefix string) ([]storage.ProductionRecord, error)
	ListElectricalThrough(ctx context.Context, through string) ([]storage.ElectricalRecord, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// Monthly builds an xlsx workbook for the given "YYYY-MM" month: a production
// sheet with daily counters per department plus a totals row, and an
// electrical sheet with the cumulative section status through month end.
func (r *ReportService) Monthly(ctx context.Context, month string) ([]byte, error) {
	const op = "service.report.Monthly"

	var (
		production []storage.ProductionRecord
		electrical []storage.ElectricalRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		production, err = r.storage.ListProductionByMonth(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		// month + "-31" is lexicographically >= every real date of the month.
		electrical, err = r.storage.ListElectricalThrough(gctx, month+"-31")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	prodSheet := "Production " + month
	f.SetSheetName("Sheet1", prodSheet)

	if err := writeProductionSheet(f, prodSheet, headerStyle, production); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	elecSheet := "Electrical"
	if _, err := f.NewSheet(elecSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := writeElectricalSheet(f, elecSheet, headerStyle, electrical); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%s: write workbook: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeProductionSheet(f *excelize.File, sheet string, headerStyle int, records []storage.ProductionRecord) error {
	headers := []string{"Date"}
	for _, dept := range constants.Departments {
		headers = append(headers, dept+" prod", dept+" hands")
	}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })

	row := 2
	for _, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, rec.Date); err != nil {
			return err
		}
		col := 2
		for _, dept := range constants.Departments {
			c := rec.Departments[dept]
			prodCell, _ := excelize.CoordinatesToCellName(col, row)
			handsCell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, prodCell, c.OndateProd)
			f.SetCellValue(sheet, handsCell, c.OndateHands)
			col += 2
		}
		row++
	}

	totals := aggregate.ProductionMonth(records)
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, "TOTAL")
	col := 2
	for _, dept := range constants.Departments {
		t := totals[dept]
		prodCell, _ := excelize.CoordinatesToCellName(col, row)
		handsCell, _ := excelize.CoordinatesToCellName(col+1, row)
		f.SetCellValue(sheet, prodCell, t.Prod)
		f.SetCellValue(sheet, handsCell, t.Hands)
		col += 2
	}
	totalRowStart, _ := excelize.CoordinatesToCellName(1, row)
	totalRowEnd, _ := excelize.CoordinatesToCellName(len(constants.Departments)*2+1, row)
	f.SetCellStyle(sheet, totalRowStart, totalRowEnd, headerStyle)

	return nil
}

func writeElectricalSheet(f *excelize.File, sheet string, headerStyle int, records []storage.ElectricalRecord) error {
	headers := []string{"Section", "Machine type", "Life (days)", "Life (months)", "Next schedule"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	totals := aggregate.Sections(records)
	for i, section := range constants.Sections {
		t := totals[section]
		row := i + 2
		values := []interface{}{section, t.MachineType, t.LifeInDays, t.LifeInMonths, t.NextSchedule}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}
