package controllers

import (
	"github.com/gofiber/fiber/v2"

	"repuestos-web/services"
)

// ExcelController serves the master spreadsheet.
type ExcelController struct {
	Exporter *services.Exporter
}

func NewExcelController(exporter *services.Exporter) *ExcelController {
	return &ExcelController{Exporter: exporter}
}

// GET /excel — always regenerates before serving, so the file mirrors the
// current store. Served inline, not as a download.
func (ct *ExcelController) Open(c *fiber.Ctx) error {
	path, err := ct.Exporter.Regenerate()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition, `inline; filename="repuestos_master.xlsx"`)
	return c.SendFile(path)
}
