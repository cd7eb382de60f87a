package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders already-resolved ledger entry views into
// downloadable files. It takes the views in the request body instead of
// querying, so exports reflect exactly what the client displayed.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type exportReq struct {
	Transactions []service.EntryView `json:"transactions" binding:"required"`
}

var exportHeader = []string{"ID", "Type", "Title", "Category", "Amount", "Details", "Attachments", "Created At"}

func exportRow(v *service.EntryView) []string {
	category := ""
	if v.Category != nil {
		category = *v.Category
	}
	details := ""
	if v.Details != nil {
		details = *v.Details
	}
	return []string{
		fmt.Sprintf("%d", v.ID),
		v.Type,
		v.Title,
		category,
		v.Amount.StringFixed(2),
		details,
		strings.Join(v.Attachments, "; "),
		v.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// writeEntriesCSV streams the views as CSV, BOM first so spreadsheet
// apps detect UTF-8.
func writeEntriesCSV(w io.Writer, views []service.EntryView) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for i := range views {
		if err := writer.Write(exportRow(&views[i])); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CSV exports the posted entry views as a CSV download.
func (h *ExportHandler) CSV(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := writeEntriesCSV(c.Writer, req.Transactions); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// XLSX exports the posted entry views as a spreadsheet download.
func (h *ExportHandler) XLSX(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, title := range exportHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, title)
	}
	for idx := range req.Transactions {
		row := idx + 2
		for col, value := range exportRow(&req.Transactions[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "G", 30)
	f.SetColWidth(sheetName, "H", "H", 18)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// PDF exports the posted entry views as a tabular PDF download.
func (h *ExportHandler) PDF(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request payload")
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Transactions", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Transactions")
	pdf.Ln(12)

	widths := []float64{15, 25, 55, 35, 25, 65, 35, 25}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range exportHeader {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i := range req.Transactions {
		for col, value := range exportRow(&req.Transactions[i]) {
			align := "L"
			if col == 4 {
				align = "R"
			}
			pdf.CellFormat(widths[col], 6, value, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="transactions.pdf"`)

	if err := pdf.Output(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
