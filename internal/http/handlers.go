package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tavola/internal/core"
)

type departmentOption struct {
	Value string
	Label string
}

func departmentOptions() []departmentOption {
	deps := core.Departments()
	out := make([]departmentOption, 0, len(deps))
	for _, d := range deps {
		out = append(out, departmentOption{Value: string(d), Label: d.Display()})
	}
	return out
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	defaultDep := core.Departments()[0]
	data := struct {
		Today          string
		Departments    []departmentOption
		Categories     []core.Category
		Default        core.Category
		PaymentMethods []core.PaymentMethod
	}{
		Today:          time.Now().Format("2006-01-02"),
		Departments:    departmentOptions(),
		Categories:     core.CategoriesFor(defaultDep),
		Default:        core.DefaultCategory(defaultDep),
		PaymentMethods: core.PaymentMethods(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleExpenses creates a record on POST and renders the list partial on GET.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	case http.MethodGet:
		s.handleListExpenses(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	date, err := core.ParseDate(r.Form.Get("date"))
	if err != nil {
		writeErrorFragment(w, "Invalid date")
		return
	}
	dep, err := core.ParseDepartment(r.Form.Get("department"))
	if err != nil || dep == core.DepartmentAll {
		writeErrorFragment(w, "Unknown department")
		return
	}
	cat, err := core.ParseCategory(r.Form.Get("category"))
	if err != nil {
		writeErrorFragment(w, "Unknown category")
		return
	}
	cents, err := core.ParseAmountToCents(r.Form.Get("amount"))
	if err != nil {
		writeErrorFragment(w, "Invalid amount")
		return
	}
	pay, err := core.ParsePaymentMethod(r.Form.Get("payment_method"))
	if err != nil {
		writeErrorFragment(w, "Unknown payment method")
		return
	}

	exp := core.Expense{
		Date:          date,
		Department:    dep,
		Category:      cat,
		Item:          sanitizeInput(r.Form.Get("item")),
		Amount:        core.Money{Cents: cents},
		Supplier:      sanitizeInput(r.Form.Get("supplier")),
		PaymentMethod: pay,
		Notes:         sanitizeInput(r.Form.Get("notes")),
	}

	stored, err := s.expenses.RecordExpense(r.Context(), exp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Expense record error", "error", err, "item", exp.Item, "amount", exp.Amount.Cents)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid expense: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	// Invalidate rendered fragments and trigger client refresh
	s.summaryCache.Purge()
	s.listCache.Purge()
	w.Header().Set("HX-Trigger", `{"expense:created": {"id": "`+stored.ID+`"}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Expense recorded (#` + template.HTMLEscapeString(stored.ID) + `): ` +
		template.HTMLEscapeString(stored.Item) +
		` — ` + formatDollars(stored.Amount.Cents) +
		` (` + template.HTMLEscapeString(stored.Department.Display()) + ` / ` + template.HTMLEscapeString(string(stored.Category)) + `)</div>`))
}

// handleListExpenses renders the expense rows partial, optionally narrowed
// to one department via ?department=.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dep := core.DepartmentAll
	if v := strings.TrimSpace(r.URL.Query().Get("department")); v != "" {
		parsed, err := core.ParseDepartment(v)
		if err != nil {
			writeErrorFragment(w, "Unknown department")
			return
		}
		dep = parsed
	}

	key := "list:" + string(dep)
	if html, found := s.listCache.Get(key); found {
		slog.DebugContext(r.Context(), "Expense list cache hit", "department", dep)
		_, _ = w.Write([]byte(html))
		return
	}

	type row struct {
		Date       string
		Department string
		Category   string
		Item       string
		Amount     string
		Supplier   string
		Payment    string
		Notes      string
	}
	items := s.expenses.List(r.Context(), dep)
	data := struct {
		Rows []row
	}{}
	for _, e := range items {
		data.Rows = append(data.Rows, row{
			Date:       e.Date.Format("01/02/2006"),
			Department: e.Department.Display(),
			Category:   string(e.Category),
			Item:       e.Item,
			Amount:     formatDollars(e.Amount.Cents),
			Supplier:   e.Supplier,
			Payment:    string(e.PaymentMethod),
			Notes:      e.Notes,
		})
	}

	html, err := s.renderPartial("expense_rows.html", data)
	if err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "expense_rows.html")
		_, _ = w.Write([]byte(`<tbody id="expense-rows"><tr><td colspan="8">Error rendering expenses</td></tr></tbody>`))
		return
	}
	s.listCache.Set(key, html)
	_, _ = w.Write([]byte(html))
}

// handleSummary renders the aggregate dashboard partial.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if html, found := s.summaryCache.Get("summary"); found {
		slog.DebugContext(r.Context(), "Summary cache hit")
		_, _ = w.Write([]byte(html))
		return
	}

	now := time.Now()
	sum := s.expenses.Summarize(r.Context(), core.NewDate(now.Year(), int(now.Month()), now.Day()))

	type row struct {
		Name   string
		Amount string
	}
	data := struct {
		Total       string
		MonthTotal  string
		MonthName   string
		Departments int
		Average     string
		Records     int
		Rows        []row
	}{
		Total:       formatDollars(sum.Total.Cents),
		MonthTotal:  formatDollars(sum.MonthTotal.Cents),
		MonthName:   now.Format("January"),
		Departments: sum.DepartmentCount,
		Average:     formatDollars(sum.AverageTransaction.Cents),
		Records:     sum.RecordCount,
	}
	// Stable row order for rendering; totals are keyed by department
	for _, d := range core.Departments() {
		if t, ok := sum.DepartmentTotals[d]; ok {
			data.Rows = append(data.Rows, row{Name: d.Display(), Amount: formatDollars(t.Cents)})
		}
	}

	html, err := s.renderPartial("summary.html", data)
	if err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "summary.html")
		_, _ = w.Write([]byte(`<section id="summary" class="summary"><div class="placeholder">Error rendering summary</div></section>`))
		return
	}
	s.summaryCache.Set("summary", html)
	_, _ = w.Write([]byte(html))
}

// handleCategoryOptions renders the category <option> list for a department.
func (s *Server) handleCategoryOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dep, err := core.ParseDepartment(r.URL.Query().Get("department"))
	if err != nil || dep == core.DepartmentAll {
		writeErrorFragment(w, "Unknown department")
		return
	}
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Categories []core.Category
		Default    core.Category
	}{
		Categories: core.CategoriesFor(dep),
		Default:    core.DefaultCategory(dep),
	}
	if err := s.templates.ExecuteTemplate(w, "category_options.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "category_options.html")
	}
}

// handleExport serializes the requested date range and hands it to the
// configured encoder.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	start, err := core.ParseDate(r.Form.Get("start"))
	if err != nil {
		writeErrorFragment(w, "Invalid start date")
		return
	}
	end, err := core.ParseDate(r.Form.Get("end"))
	if err != nil {
		writeErrorFragment(w, "Invalid end date")
		return
	}

	res, err := s.exporter.Export(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Export error", "error", err,
			"start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Export failed</div>`))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Exported ` + template.HTMLEscapeString(res.Filename) +
		` (` + formatCount(res.RowCount) + `) — ` + template.HTMLEscapeString(res.Ref) + `</div>`))
}

func writeErrorFragment(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(msg) + `</div>`))
}
