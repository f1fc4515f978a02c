// Package report renders normalized notification records into a spreadsheet.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"consultapje/internal/logger"
	"consultapje/internal/models"
	"consultapje/pkg/metadata"
	"consultapje/pkg/utils"
)

// ErrExportFailed wraps every failure while building or writing a report.
var ErrExportFailed = errors.New("export failed")

// Creator is written into the workbook properties.
const Creator = "consulta-pje"

// Options configures the report layout and location.
type Options struct {
	Dir            string
	Prefix         string
	Extension      string
	SheetName      string
	HeaderColor    string
	RunID          string
	MaxColumnWidth int
	ColumnPadding  int
}

// Exporter writes report tables as single-sheet workbooks.
type Exporter struct {
	fs      afero.Fs
	logger  *logger.Logger
	strings *utils.StringHelper
	opts    Options
}

// NewExporter creates an exporter writing through fs. A nil fs means the OS filesystem.
func NewExporter(fs afero.Fs, opts Options, log *logger.Logger) *Exporter {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if log == nil {
		log = logger.Discard()
	}

	return &Exporter{
		fs:      fs,
		logger:  log,
		strings: utils.NewStringHelper(),
		opts:    opts,
	}
}

// Path returns the report file path for label.
func (e *Exporter) Path(label string) string {
	return filepath.Join(e.opts.Dir, fmt.Sprintf("%s_%s.%s", e.opts.Prefix, label, e.opts.Extension))
}

// Export writes table to {dir}/{prefix}_{label}.{ext} and returns the path.
// An empty table writes nothing and returns "" with a nil error.
func (e *Exporter) Export(table *models.ReportTable, label string) (string, error) {
	if table.IsEmpty() {
		e.logger.Warn("Nenhum dado para exportar")

		return "", nil
	}

	path := e.Path(label)

	if err := e.export(table, label, path); err != nil {
		err = fmt.Errorf("%w: %w", ErrExportFailed, err)
		e.logger.Error(fmt.Sprintf("Erro ao exportar para Excel: %v", err), "path", path)

		return "", err
	}

	e.logger.Info(fmt.Sprintf("Dados exportados com sucesso para %s", path), "records", table.Len())

	return path, nil
}

func (e *Exporter) export(table *models.ReportTable, label, path string) error {
	f, err := e.Build(table, label)
	if err != nil {
		return err
	}
	defer f.Close()

	return e.write(f, path)
}

// Build renders table into an in-memory workbook.
func (e *Exporter) Build(table *models.ReportTable, label string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := e.opts.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := e.cellRows(table)

	if err := e.fill(f, sheet, rows); err != nil {
		f.Close()

		return nil, err
	}

	if err := e.decorate(f, sheet, rows); err != nil {
		f.Close()

		return nil, err
	}

	meta := metadata.Sign(rows, e.opts.RunID)
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       sheet,
		Subject:     fmt.Sprintf("Comunicações processuais %s", label),
		Creator:     Creator,
		Description: meta.String(),
		Identifier:  e.opts.RunID,
		Created:     meta.GeneratedAt.Format(time.RFC3339),
		Version:     meta.Version,
	}); err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	return f, nil
}

// cellRows returns the table as written: text clipped to the cell size limit.
func (e *Exporter) cellRows(table *models.ReportTable) [][]string {
	rows := table.Rows()
	for _, row := range rows {
		for i, v := range row {
			row[i] = e.strings.TruncateString(v, utils.MaxCellChars)
		}
	}

	return rows
}

func (e *Exporter) fill(f *excelize.File, sheet string, rows [][]string) error {
	header := make([]any, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}

		// Numeric identifiers stay numeric so the column sorts correctly.
		if id, err := strconv.ParseInt(row[0], 10, 64); err == nil {
			cells[0] = id
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return nil
}

// decorate styles the header row, sizes the columns and adds the autofilter.
func (e *Exporter) decorate(f *excelize.File, sheet string, rows [][]string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{e.opts.HeaderColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(models.Columns), 1)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, w := range ColumnWidths(models.Columns, rows, e.opts.ColumnPadding, e.opts.MaxColumnWidth) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	lastCell, err := excelize.CoordinatesToCellName(len(models.Columns), len(rows)+1)
	if err != nil {
		return err
	}

	if err := f.AutoFilter(sheet, "A1:"+lastCell, nil); err != nil {
		return fmt.Errorf("failed to add autofilter: %w", err)
	}

	return nil
}

// write saves the workbook to a temporary file and renames it into place,
// so a failed export never leaves a partial report at path.
func (e *Exporter) write(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(e.fs, dir, "."+e.opts.Prefix+"_*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = e.fs.Remove(tmpName)

		return fmt.Errorf("failed to write workbook: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = e.fs.Remove(tmpName)

		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := e.fs.Rename(tmpName, path); err != nil {
		_ = e.fs.Remove(tmpName)

		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}
