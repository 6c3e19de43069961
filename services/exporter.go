package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"repuestos-web/models"
	"repuestos-web/utils"
)

const exportSheet = "Repuestos"

// exportHeader mirrors the repuestos column order.
var exportHeader = []interface{}{
	"id", "codigo_wiener", "codigo_original", "nombre",
	"descripcion", "equipo", "notas", "imagen", "estado",
}

// Exporter rebuilds the master spreadsheet from the full store contents.
// Every run overwrites the single file at Path; there is no incremental
// append and no versioning, correctness comes from always reflecting the
// current store state.
type Exporter struct {
	DB     *gorm.DB
	Path   string
	Logger *zap.Logger
}

func NewExporter(db *gorm.DB, path string, logger *zap.Logger) *Exporter {
	return &Exporter{DB: db, Path: path, Logger: logger}
}

// Regenerate serializes every part, ascending by vendor code, into the
// master file and returns its path. The file is replaced via temp-then-rename
// so a crash mid-write cannot leave a truncated master behind.
func (e *Exporter) Regenerate() (string, error) {
	var parts []models.Part
	if err := e.DB.Order("codigo_wiener").Find(&parts).Error; err != nil {
		return "", fmt.Errorf("list parts: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return "", err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return "", err
	}
	for i, p := range parts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []interface{}{
			p.Id, p.VendorCode, p.OriginalCode, p.Name,
			p.Description, p.Equipment, p.Notes, p.ImagePath, p.Status,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("serialize spreadsheet: %w", err)
	}
	if err := utils.ReplaceFile(e.Path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write spreadsheet: %w", err)
	}

	e.Logger.Info("master spreadsheet regenerated",
		zap.String("path", e.Path), zap.Int("rows", len(parts)))
	return e.Path, nil
}
