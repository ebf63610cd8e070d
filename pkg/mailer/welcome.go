package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome is sent once after a successful registration.
const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New("welcome").Parse(`<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Welcome to Hoagie, {{.Name}}!</h2>
  <p>Your account <b>{{.Email}}</b> is ready. Publish a hoagie, invite
  collaborators and let the comments roll in.</p>
</body>
</html>`))

// NewWelcomeJob builds the queue payload for a registration welcome email.
func NewWelcomeJob(name, email string) EmailJob {
	return EmailJob{
		To:       email,
		Template: TemplateWelcome,
		Data:     map[string]any{"Name": name, "Email": email},
	}
}

// RenderWelcome renders subject, text and HTML bodies for a welcome job.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	name := fmt.Sprintf("%v", data["Name"])
	email := fmt.Sprintf("%v", data["Email"])
	var buf bytes.Buffer
	if err := welcomeHTML.Execute(&buf, map[string]string{"Name": name, "Email": email}); err != nil {
		return "", "", "", err
	}
	subject = "Welcome to Hoagie"
	text = fmt.Sprintf("Welcome to Hoagie, %s! Your account %s is ready.", name, email)
	return subject, text, buf.String(), nil
}
