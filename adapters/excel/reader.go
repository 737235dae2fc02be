package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"launchdash/internal"
	"launchdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	log      *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		log:      internal.DefaultLogger.WithComponent("DataReader"),
	}
}

// WithSheet selects a worksheet by name. The first sheet is used otherwise.
func (r *DataReader) WithSheet(sheet string) *DataReader {
	r.sheet = sheet
	return r
}

// FileType returns "csv" or "xlsx".
func (r *DataReader) FileType() string { return r.fileType }

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*Table, error) {
	r.log.Debug("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DatasetInvalid(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.DatasetInvalid("unsupported file type: " + r.fileType)
	}
}

// readExcelData reads one worksheet into structured format
func (r *DataReader) readExcelData() (*Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetInvalid, fmt.Errorf("failed to open Excel file: %w", err))
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.DatasetInvalid("Excel file has no worksheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetInvalid, fmt.Errorf("failed to read sheet %s: %w", sheet, err))
	}
	r.log.Debug("Sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.DatasetInvalid("Excel file must have at least a header row and one data row")
	}

	lines := make([]int, len(rows))
	for i := range rows {
		lines[i] = i + 1
	}
	return r.processRows(rows, lines)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetInvalid, fmt.Errorf("failed to open CSV file: %w", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()

	// encoding/csv drops blank lines, so each record keeps its own line number.
	var rows [][]string
	var lines []int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithCode(errors.CodeDatasetInvalid, fmt.Errorf("failed to read CSV file: %w", err))
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, row)
		lines = append(lines, line)
	}
	r.log.Debug("CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.DatasetInvalid("CSV file must have at least a header row and one data row")
	}

	return r.processRows(rows, lines)
}

// processRows converts raw string rows into a Table. Blank lines are skipped.
// lines[i] is the 1-based position of rows[i] in the source file.
func (r *DataReader) processRows(rows [][]string, lines []int) (*Table, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	var dataRows []RawRowData
	var dataLines []int
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		rowData := make(RawRowData)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
		dataLines = append(dataLines, lines[i])
	}

	r.log.Info("%s file processed (%d columns, %d rows)", strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &Table{
		Headers: headers,
		Rows:    dataRows,
		Lines:   dataLines,
	}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
