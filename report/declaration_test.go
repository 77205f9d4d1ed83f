package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationHTML(t *testing.T) {
	decl := Declaration{
		CompanyName: "Exemplu SRL",
		TaxID:       "RO1234567",
		VATAmount:   19,
	}

	html, err := decl.HTML()
	require.NoError(t, err)

	assert.Contains(t, html, "TVA Declaration - Exemplu SRL")
	assert.Contains(t, html, "CUI: RO1234567")
	// Romanian locale renders the decimal separator as a comma.
	assert.Contains(t, html, "19,00 RON")
}

func TestDeclarationHTMLEscapesInput(t *testing.T) {
	decl := Declaration{
		CompanyName: `<script>alert("x")</script>`,
		TaxID:       "RO1",
		VATAmount:   0,
	}

	html, err := decl.HTML()
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
