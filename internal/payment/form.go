package payment

import (
	"bytes"
	"html/template"
	"net/http"
	"sort"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

var formTemplate = template.Must(template.New("handoff").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.forms[0].submit()">
<form method="{{.Method}}" action="{{.URL}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

type formField struct {
	Name  string
	Value string
}

// RenderForm builds the auto-submitting page that performs the handoff.
func RenderForm(h *models.Handoff) ([]byte, error) {
	method := h.Method
	if method == "" {
		method = http.MethodPost
	}

	fields := make([]formField, 0, len(h.Fields))
	for k, v := range h.Fields {
		fields = append(fields, formField{Name: k, Value: v})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, struct {
		Method string
		URL    string
		Fields []formField
	}{method, h.URL, fields}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
