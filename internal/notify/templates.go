package notify

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// letter is what every email template renders.
type letter struct {
	Greeting string
	Intro    string
	OrderID  string
	Lines    []letterLine
	Total    string
	Outro    string
}

type letterLine struct {
	Product  string
	Store    string
	Quantity int
	Price    string
	Subtotal string
	Status   string
}

const htmlLayout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <p>{{.Greeting}}</p>
  <p>{{.Intro}}</p>
  <p><strong>Order:</strong> {{.OrderID}}</p>
  {{- if .Lines}}
  <table cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
    <tr><th align="left">Product</th><th align="left">Store</th><th>Qty</th><th>Price</th><th>Subtotal</th><th>Status</th></tr>
    {{- range .Lines}}
    <tr><td>{{.Product}}</td><td>{{.Store}}</td><td align="center">{{.Quantity}}</td><td align="right">{{.Price}}</td><td align="right">{{.Subtotal}}</td><td>{{.Status}}</td></tr>
    {{- end}}
  </table>
  {{- end}}
  {{- if .Total}}
  <p><strong>Total:</strong> {{.Total}}</p>
  {{- end}}
  <p>{{.Outro}}</p>
  <p>Lens Gallery</p>
</body>
</html>
`

const textLayout = `{{.Greeting}}

{{.Intro}}

Order: {{.OrderID}}
{{range .Lines}}
- {{.Product}} ({{.Store}}) x{{.Quantity}} @ {{.Price}} = {{.Subtotal}} [{{.Status}}]
{{- end}}
{{if .Total}}
Total: {{.Total}}
{{end}}
{{.Outro}}

Lens Gallery
`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("letter.html").Parse(htmlLayout))
	textTmpl = texttemplate.Must(texttemplate.New("letter.txt").Parse(textLayout))
)

func render(l letter) (text, html string, err error) {
	var tb, hb strings.Builder
	if err := textTmpl.Execute(&tb, l); err != nil {
		return "", "", err
	}
	if err := htmlTmpl.Execute(&hb, l); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}
