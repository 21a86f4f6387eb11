package billing

import (
	"bytes"
	"html/template"

	"vishnu-auto/internal/domain"
)

var printableTmpl = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Bill - {{.ShopName}}</title>
<style>
body { font-family: Arial; padding: 20px; }
.header { text-align: center; margin-bottom: 30px; }
.bill-details { margin: 20px 0; }
.item { border-bottom: 1px solid #ccc; padding: 10px 0; }
.total { font-weight: bold; font-size: 18px; margin-top: 20px; }
</style>
</head>
<body>
<div class="header">
<h1>{{.ShopName}}</h1>
<p>Bike Repair &amp; Service Center</p>
</div>
<div class="bill-details">
<p><strong>Booking ID:</strong> #{{.Bill.BookingID}}</p>
<p><strong>Customer:</strong> {{.Bill.CustomerName}}</p>
<p><strong>Phone:</strong> {{.Bill.CustomerPhone}}</p>
<p><strong>Date:</strong> {{.Bill.Date}}</p>
<p><strong>Time:</strong> {{.Bill.Time}}</p>
</div>
<div class="items">
<div class="item"><strong>{{.Bill.ServiceName}}</strong> - Rs.{{.Bill.ServicePrice}}</div>
{{range .Bill.Items}}<div class="item">{{.Name}} x {{.Quantity}} - Rs.{{.Subtotal}}</div>
{{end}}</div>
<div class="total">Total Amount: Rs.{{.Bill.TotalAmount}}</div>
</body>
</html>
`))

// RenderPrintable produces the standalone printable bill document. The
// frontend opens it in a new window and triggers the print dialog itself.
func RenderPrintable(shopName string, bill domain.Bill) ([]byte, error) {
	var buf bytes.Buffer
	err := printableTmpl.Execute(&buf, struct {
		ShopName string
		Bill     domain.Bill
	}{ShopName: shopName, Bill: bill})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
