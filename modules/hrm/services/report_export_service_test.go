package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
)

func TestReportExportService_WritesSummaryAndDetailSheets(t *testing.T) {
	t.Parallel()
	svc := setupReportService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dtos.ReportDTO{
		Title:     "Q1 activity",
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
		Sections: []dtos.ReportSectionDTO{
			{Title: "Hiring", Content: "Two offers extended."},
		},
		Status: "submitted",
	})
	require.NoError(t, err)

	exporter := services.NewReportExportService(svc)
	data, err := exporter.Export(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Reports", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Q1 activity", title)

	status, err := f.GetCellValue("Reports", "E2")
	require.NoError(t, err)
	assert.Equal(t, "submitted", status)

	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)

	section, err := f.GetCellValue(sheets[1], "A2")
	require.NoError(t, err)
	assert.Equal(t, "Hiring", section)
}
