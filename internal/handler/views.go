package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"erpviews-backend/internal/metrics"
	"erpviews-backend/internal/table"
	"erpviews-backend/internal/views"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

const filterPrefix = "filter."

type ViewHandler struct {
	Registry *views.Registry
}

func (h ViewHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views", h.list)
	r.Get("/views/{key}", h.query)
	r.Get("/views/{key}/export", h.export)
}

func (h ViewHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Registry.List())
}

// parseViewRequest reads search, sort, dir, page, pageSize and every
// filter.<key> parameter.
func parseViewRequest(q url.Values) (views.Request, error) {
	req := views.Request{
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
		Dir:    table.Direction(strings.ToLower(q.Get("dir"))),
	}
	if req.Dir != "" && req.Dir != table.Asc && req.Dir != table.Desc {
		return req, fmt.Errorf("invalid dir %q", q.Get("dir"))
	}
	for key, vals := range q {
		if !strings.HasPrefix(key, filterPrefix) || len(vals) == 0 {
			continue
		}
		if req.Filters == nil {
			req.Filters = map[string]string{}
		}
		req.Filters[strings.TrimPrefix(key, filterPrefix)] = vals[0]
	}
	for name, dst := range map[string]*int{"page": &req.Page, "pageSize": &req.PageSize} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return req, fmt.Errorf("invalid %s", name)
		}
		*dst = n
	}
	return req, nil
}

func (h ViewHandler) query(w http.ResponseWriter, r *http.Request) {
	req, err := parseViewRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.Registry.Query(r.Context(), chi.URLParam(r, "key"), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h ViewHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	req, err := parseViewRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	exp, err := h.Registry.Export(r.Context(), chi.URLParam(r, "key"), req)
	if err != nil {
		writeErr(w, err)
		return
	}

	filename := fmt.Sprintf("%s_%s", exp.Key, time.Now().Format("20060102_150405"))
	switch format {
	case "csv":
		data, err := exportCSV(exp)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		metrics.ViewExports.WithLabelValues(exp.Key, "csv").Inc()
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportXLSX(exp)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		metrics.ViewExports.WithLabelValues(exp.Key, "xlsx").Inc()
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func exportCSV(exp views.Export) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write(exp.Headers)
	for _, row := range exp.Rows {
		_ = w.Write(row)
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// sheetName trims a title to the 31 characters Excel allows.
func sheetName(title string) string {
	if len(title) > 31 {
		return title[:31]
	}
	return title
}

func exportXLSX(exp views.Export) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := sheetName(exp.Title)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, v := range exp.Headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
		col, _ := excelize.ColumnNumberToName(c + 1)
		_ = f.SetColWidth(sheet, col, col, 18)
	}
	for r, row := range exp.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	if len(exp.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(exp.Headers), 1)
		style, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
		})
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
