package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOrdersCSV(t *testing.T) {
	rows := []service.OrderRow{{
		Priority:        1,
		Order:           "Gearbox, left",
		Part:            "Gear",
		Reference:       "GR-1",
		Quantity:        "10",
		UnitMinutes:     "60",
		TotalMinutes:    600,
		ProductionOrder: "OP-1",
		Start:           "10/03/2025",
		End:             "12/03/2025",
		DaysNeeded:      2,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(service.OrderHeader, ","), lines[0])
	assert.Equal(t, `1,"Gearbox, left",Gear,GR-1,10,60,600,OP-1,10/03/2025,12/03/2025,2`, lines[1])
}

func TestWritePartsCSV_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePartsCSV(&buf, nil))
	assert.Equal(t, "name,reference,time_minutes,production_order\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WritePartsCSV(failingWriter{}, []service.PartRow{{Name: "Gear", Reference: "GR-1", TimeMinutes: 1}})
	assert.ErrorContains(t, err, "closed pipe")
}
