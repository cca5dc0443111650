package invoice

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

const (
	FormatText = "text"
	FormatHTML = "html"

	rule       = "----------------------------------------"
	dateLayout = "02 Jan 2006 15:04"
)

type Renderer struct {
	currency string
	footer   template.HTML
	tmpl     *template.Template
}

// NewRenderer sanitises the seller footer once; only UGC-safe markup survives.
func NewRenderer(currency, footerHTML string) *Renderer {
	r := &Renderer{
		currency: currency,
		footer:   template.HTML(bluemonday.UGCPolicy().Sanitize(footerHTML)),
	}

	r.tmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
		"money": r.money,
		"date": func(inv Invoice) string {
			return inv.IssuedAt.Format(dateLayout)
		},
	}).Parse(htmlTemplate))

	return r
}

// Render writes inv in the given format; anything but "html" renders text.
func (r *Renderer) Render(w io.Writer, format string, inv Invoice) error {
	if format == FormatHTML {
		return r.HTML(w, inv)
	}

	return r.Text(w, inv)
}

func (r *Renderer) ContentType(format string) string {
	if format == FormatHTML {
		return "text/html; charset=utf-8"
	}

	return "text/plain; charset=utf-8"
}

// Text renders a fixed-width receipt suitable for a thermal printer.
func (r *Renderer) Text(w io.Writer, inv Invoice) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, inv.Seller.Name)

	for _, line := range []string{inv.Seller.Address, phone(inv.Seller.Phone), gstin(inv.Seller.GSTIN)} {
		if line != "" {
			fmt.Fprintln(tw, line)
		}
	}

	fmt.Fprintln(tw, rule)

	if inv.Preview {
		fmt.Fprintln(tw, "PREVIEW - NOT A RECEIPT")
	}

	fmt.Fprintf(tw, "Invoice:\t%s\n", inv.Number)
	fmt.Fprintf(tw, "Date:\t%s\n", inv.IssuedAt.Format(dateLayout))

	if inv.Cashier != "" {
		fmt.Fprintf(tw, "Cashier:\t%s\n", inv.Cashier)
	}

	if customer := customerLine(inv); customer != "" {
		fmt.Fprintf(tw, "Customer:\t%s\n", customer)
	}

	if payment := inv.PaymentLine(); payment != "" {
		fmt.Fprintf(tw, "Payment:\t%s\n", payment)
	}

	fmt.Fprintln(tw, rule)
	fmt.Fprintln(tw, "Item\tQty\tPrice\tAmount")

	for _, line := range inv.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", line.Name, line.Quantity, line.UnitPrice.StringFixed(2), line.Total.StringFixed(2))
	}

	fmt.Fprintln(tw, rule)
	fmt.Fprintf(tw, "Items: %d\tQty: %d\n", inv.ItemCount, inv.TotalQuantity)
	fmt.Fprintf(tw, "Subtotal\t%s\n", r.money(inv.Subtotal))
	fmt.Fprintf(tw, "Total\t%s\n", r.money(inv.Total))

	return tw.Flush()
}

func (r *Renderer) HTML(w io.Writer, inv Invoice) error {
	return r.tmpl.Execute(w, struct {
		Invoice
		Footer template.HTML
	}{Invoice: inv, Footer: r.footer})
}

func (r *Renderer) money(d decimal.Decimal) string {
	return strings.TrimSpace(r.currency + " " + d.StringFixed(2))
}

func customerLine(inv Invoice) string {
	c := inv.Customer

	switch {
	case c.Name != "" && c.Phone != "":
		return fmt.Sprintf("%s (%s)", c.Name, c.Phone)
	case c.Name != "":
		return c.Name
	default:
		return c.Phone
	}
}

func phone(p string) string {
	if p == "" {
		return ""
	}

	return "Phone: " + p
}

func gstin(g string) string {
	if g == "" {
		return ""
	}

	return "GSTIN: " + g
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Number}}</title></head>
<body>
<header>
<h1>{{.Seller.Name}}</h1>
{{with .Seller.Address}}<p>{{.}}</p>{{end}}
{{with .Seller.Phone}}<p>Phone: {{.}}</p>{{end}}
{{with .Seller.GSTIN}}<p>GSTIN: {{.}}</p>{{end}}
</header>
{{if .Preview}}<p class="preview">PREVIEW - NOT A RECEIPT</p>{{end}}
<section class="meta">
<p>Invoice: {{.Number}}</p>
<p>Date: {{date .Invoice}}</p>
{{with .Cashier}}<p>Cashier: {{.}}</p>{{end}}
{{with .Customer.Name}}<p>Customer: {{.}}</p>{{end}}
{{with .Customer.Phone}}<p>Phone: {{.}}</p>{{end}}
{{with .PaymentLine}}<p>Payment: {{.}}</p>{{end}}
</section>
<table>
<thead><tr><th>Item</th><th>Qty</th><th>Price</th><th>Amount</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{money .Total}}</td></tr>
{{end}}</tbody>
</table>
<p>Items: {{.ItemCount}} Qty: {{.TotalQuantity}}</p>
<p>Subtotal: {{money .Subtotal}}</p>
<p class="total">Total: {{money .Total}}</p>
{{with .Footer}}<footer>{{.}}</footer>{{end}}
</body>
</html>
`
