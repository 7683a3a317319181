package notifications

import (
	"bytes"
	"html/template"

	"neuralink-backend/internal/consultations"
)

const consultationNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New consultation request</h3>
  <p><strong>Request ID:</strong> {{.ID}}</p>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Company:</strong> {{.Company}}</p>
  <p><strong>Service interest:</strong> {{.ServiceInterest}}</p>
  <p><strong>Received:</strong> {{.Timestamp}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var consultationNotificationTmpl = template.Must(template.New("consultation_notification").Parse(consultationNotificationTemplate))

func buildConsultationNotificationHTML(req consultations.Request) (string, error) {
	var buf bytes.Buffer
	if err := consultationNotificationTmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
