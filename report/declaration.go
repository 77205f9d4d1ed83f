package report

import (
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Declaration carries the fields printed on a TVA declaration.
type Declaration struct {
	CompanyName string
	TaxID       string
	VATAmount   float64
}

var declarationTmpl = template.Must(template.New("declaration").Parse(`<!DOCTYPE html>
<html lang="ro">
<head>
  <meta charset="utf-8">
  <title>Declaratie TVA</title>
</head>
<body style="font-family: sans-serif; text-align: center;">
  <h1>TVA Declaration - {{.CompanyName}}</h1>
  <p>CUI: {{.TaxID}}</p>
  <p>Calculated VAT: {{.VATAmount}} RON</p>
</body>
</html>
`))

// Amounts on the declaration follow Romanian number formatting.
var ronPrinter = message.NewPrinter(language.Romanian)

// HTML renders the document handed to the PDF engine.
func (d Declaration) HTML() (string, error) {
	data := struct {
		CompanyName string
		TaxID       string
		VATAmount   string
	}{
		CompanyName: d.CompanyName,
		TaxID:       d.TaxID,
		VATAmount:   ronPrinter.Sprintf("%.2f", d.VATAmount),
	}
	var sb strings.Builder
	if err := declarationTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
