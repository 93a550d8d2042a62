package document

import (
	"fmt"
	"testing"
	"time"

	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuotation(lineCount int) *quotation.Quotation {
	q := &quotation.Quotation{
		ID:         "COT_20240307_143509",
		ClientID:   1,
		ClientName: "Acme Corp",
		Date:       time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	}
	for i := 0; i < lineCount; i++ {
		q.Lines = append(q.Lines, quotation.Line{
			ItemID:    int64(i + 1),
			ItemName:  fmt.Sprintf("Artículo %d", i+1),
			TypeName:  "Producto",
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("100.00"),
		})
	}
	q.ComputeTotal()
	return q
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(Config{})
	require.NoError(t, err)
	return r
}

func TestRenderer_Render(t *testing.T) {
	t.Run("produces a PDF document", func(t *testing.T) {
		r := newTestRenderer(t)

		out, err := r.Render(testQuotation(2))

		require.NoError(t, err)
		require.Greater(t, len(out), 4)
		assert.Equal(t, "%PDF", string(out[:4]))
	})

	t.Run("rejects negative totals", func(t *testing.T) {
		r := newTestRenderer(t)
		q := testQuotation(1)
		q.Total = decimal.RequireFromString("-1")

		_, err := r.Render(q)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
	})

	t.Run("rejects negative line prices", func(t *testing.T) {
		r := newTestRenderer(t)
		q := testQuotation(1)
		q.Lines[0].UnitPrice = decimal.RequireFromString("-5")

		_, err := r.Render(q)
		assert.Error(t, err)
	})
}

func TestRenderer_Pagination(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("few lines fit on one page", func(t *testing.T) {
		pdf := r.build(testQuotation(3))
		assert.Equal(t, 1, pdf.PageCount())
	})

	t.Run("many lines flow onto following pages", func(t *testing.T) {
		pdf := r.build(testQuotation(60))
		assert.GreaterOrEqual(t, pdf.PageCount(), 3)
	})

	t.Run("long descriptions wrap instead of overflowing", func(t *testing.T) {
		q := testQuotation(1)
		q.Lines[0].ItemName = "Servicio de instalación y configuración de infraestructura de red corporativa incluyendo cableado estructurado certificado"

		out, err := r.Render(q)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "cotizacion_COT_20240307_143509.pdf", Filename("COT_20240307_143509"))
}
