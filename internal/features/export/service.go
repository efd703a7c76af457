package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/features/submission"
	"go-reporthub/internal/features/template"
	"go-reporthub/internal/features/user"

	"github.com/xuri/excelize/v2"
)

// fixedHeaders lead every export; dynamic form-field columns follow.
var fixedHeaders = []string{"ID", "Template", "Location", "Month/Year", "Status", "Submitted By", "Submitted At"}

type ExportService interface {
	ExportCSV(ctx context.Context, userID string, filter submission.ListFilter) ([]byte, string, error)
	ExportExcel(ctx context.Context, userID string, filter submission.ListFilter) ([]byte, string, error)
}

type ExportServiceImpl struct {
	SubmissionRepo submission.SubmissionRepository
	TemplateRepo   template.TemplateRepository
	UserRepo       user.UserRepository
	AuditService   audit.AuditService
}

func NewExportService(
	submissionRepo submission.SubmissionRepository,
	templateRepo template.TemplateRepository,
	userRepo user.UserRepository,
	auditService audit.AuditService,
) ExportService {
	return &ExportServiceImpl{
		SubmissionRepo: submissionRepo,
		TemplateRepo:   templateRepo,
		UserRepo:       userRepo,
		AuditService:   auditService,
	}
}

// exportTable is the flattened form both output formats render.
type exportTable struct {
	Headers []string
	Rows    [][]string
}

func (s *ExportServiceImpl) ExportCSV(ctx context.Context, userID string, filter submission.ListFilter) ([]byte, string, error) {
	table, err := s.buildTable(ctx, userID, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Headers); err != nil {
		return nil, "", err
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return nil, "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reports_%s.csv", time.Now().Format("20060102_150405"))
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionExport, "submissions", filename, nil)
	return buf.Bytes(), filename, nil
}

func (s *ExportServiceImpl) ExportExcel(ctx context.Context, userID string, filter submission.ListFilter) ([]byte, string, error) {
	table, err := s.buildTable(ctx, userID, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Reports"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, header := range table.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range table.Rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range table.Headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reports_%s.xlsx", time.Now().Format("20060102_150405"))
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionExport, "submissions", filename, nil)
	return buffer.Bytes(), filename, nil
}

// buildTable fetches the scoped submissions and flattens them. Dynamic
// columns are the union of field labels across the templates the
// exported submissions reference, in template field order.
func (s *ExportServiceImpl) buildTable(ctx context.Context, userID string, filter submission.ListFilter) (*exportTable, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	filter.Location = role.ScopeLocation(u, filter.Location)

	subs, err := s.SubmissionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	templates, err := s.TemplateRepo.List(ctx, common_models.AllStates)
	if err != nil {
		return nil, err
	}
	templateByID := make(map[string]*template.Template, len(templates))
	for i := range templates {
		templateByID[templates[i].ID.Hex()] = &templates[i]
	}

	usernames := s.usernamesFor(ctx, subs)

	// Dynamic columns: every field of every referenced template, once.
	var fieldNames []string
	var fieldLabels []string
	seen := make(map[string]bool)
	for _, sub := range subs {
		tpl, ok := templateByID[sub.TemplateID]
		if !ok {
			continue
		}
		for _, field := range tpl.Fields {
			if !seen[field.Name] {
				seen[field.Name] = true
				fieldNames = append(fieldNames, field.Name)
				fieldLabels = append(fieldLabels, field.Label)
			}
		}
	}

	table := &exportTable{
		Headers: append(append([]string{}, fixedHeaders...), fieldLabels...),
	}

	for _, sub := range subs {
		templateName := "Unknown Template"
		if tpl, ok := templateByID[sub.TemplateID]; ok {
			templateName = tpl.Name
		}
		submittedBy := sub.SubmittedBy
		if name, ok := usernames[sub.SubmittedBy]; ok {
			submittedBy = name
		}

		row := []string{
			sub.ID.Hex(),
			templateName,
			sub.ServiceLocation,
			sub.MonthYear,
			string(sub.Status),
			submittedBy,
			sub.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		for _, name := range fieldNames {
			row = append(row, sub.FormData[name])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func (s *ExportServiceImpl) usernamesFor(ctx context.Context, subs []submission.Submission) map[string]string {
	ids := make([]string, 0)
	unique := make(map[string]bool)
	for _, sub := range subs {
		if sub.SubmittedBy != "" && !unique[sub.SubmittedBy] {
			unique[sub.SubmittedBy] = true
			ids = append(ids, sub.SubmittedBy)
		}
	}
	if len(ids) == 0 {
		return map[string]string{}
	}

	names, err := s.UserRepo.FindUsernamesByIDs(ctx, ids)
	if err != nil {
		return map[string]string{}
	}
	return names
}
