// file: services/export_service_test.go
package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedantwankhade123/Roborace/models"
)

func TestExportCSVRowCountMatchesInput(t *testing.T) {
	feed := sampleFeed()
	data, err := ExportCSV(feed)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// Header plus one row per registration.
	assert.Len(t, records, len(feed)+1)
	assert.Equal(t, []string{"Team Name", "Leader", "College", "Dept", "Email", "Phone", "Status", "Receipt"}, records[0])
}

func TestExportCSVQuotesEmbeddedSeparators(t *testing.T) {
	regs := []models.Registration{
		{
			TeamName:    `Team "Alpha"`,
			LeaderName:  "A, B",
			CollegeName: "Raisoni College, Nagpur",
			Department:  "B.Tech CSE",
			Email:       "a@b.com",
			Phone:       "+91 12345",
			RobotSpecs:  "line1\nline2",
			Status:      models.StatusPending,
			ReceiptURL:  "https://res.cloudinary.com/demo/x.png",
		},
	}

	data, err := ExportCSV(regs)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	// Embedded commas and quotes survive the round trip intact.
	assert.Equal(t, `Team "Alpha"`, row[0])
	assert.Equal(t, "A, B", row[1])
	assert.Equal(t, "Raisoni College, Nagpur", row[2])
}

func TestExportCSVEmptyFeed(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportPDF(t *testing.T) {
	data, err := ExportPDF(sampleFeed())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}

func TestExportPDFEmptyFeed(t *testing.T) {
	data, err := ExportPDF(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
