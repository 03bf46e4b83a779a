package leads

import (
	"fmt"
	"html/template"
	"strings"
)

const (
	companyName = "Garderie la fée des étoiles"

	brandColor = "#8B4789"
	ctaColor   = "#E91E63"
	mutedColor = "#6b7280"
)

// Notification is a rendered staff email with both variants. Text is the
// fallback for clients that do not display HTML.
type Notification struct {
	Subject string
	HTML    string
	Text    string
}

type notifyField struct {
	Label string
	Value string
}

type notifyData struct {
	Title    string
	Accent   string
	Fields   []notifyField
	Extra    template.HTML
	ExtraTag string
}

var notifyTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Helvetica,Arial,sans-serif;">
  <div style="max-width:600px;margin:0 auto;padding:24px;">
    <div style="background-color:{{.Accent}};border-radius:8px 8px 0 0;padding:24px;text-align:center;">
      <h1 style="margin:0;color:#ffffff;font-size:20px;">` + companyName + `</h1>
      <p style="margin:8px 0 0;color:#ffffff;font-size:16px;">{{.Title}}</p>
    </div>
    <div style="background-color:#ffffff;border-radius:0 0 8px 8px;padding:24px;">
      {{range .Fields}}<div style="margin-bottom:16px;">
        <p style="margin:0;color:` + mutedColor + `;font-size:12px;text-transform:uppercase;">{{.Label}}</p>
        <p style="margin:4px 0 0;color:#111827;font-size:15px;">{{.Value}}</p>
      </div>
      {{end}}{{if .Extra}}<div style="margin-top:24px;border-top:1px solid #e5e7eb;padding-top:16px;">
        <p style="margin:0;color:` + mutedColor + `;font-size:12px;text-transform:uppercase;">{{.ExtraTag}}</p>
        <p style="margin:4px 0 0;color:#111827;font-size:15px;">{{.Extra}}</p>
      </div>
      {{end}}
    </div>
    <p style="margin:16px 0 0;text-align:center;color:` + mutedColor + `;font-size:12px;">Message envoyé depuis le site web de ` + companyName + `</p>
  </div>
</body>
</html>
`))

// nl2br HTML-escapes free text and converts newlines to <br> so multi-line
// messages keep their shape. The result is safe to inject as template.HTML.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func renderNotification(data notifyData) (string, error) {
	var b strings.Builder
	if err := notifyTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}
	return b.String(), nil
}

func renderText(title string, fields []notifyField, extraTag, extra string) string {
	var b strings.Builder
	b.WriteString(companyName + "\n")
	b.WriteString(title + "\n\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "%s : %s\n", f.Label, f.Value)
	}
	if extra != "" {
		fmt.Fprintf(&b, "\n%s :\n%s\n", extraTag, extra)
	}
	return b.String()
}

// ContactNotification renders the staff email for a contact submission.
// The optional details section is omitted entirely when empty.
func ContactNotification(req *ContactRequest) (*Notification, error) {
	fields := []notifyField{
		{Label: "Nom", Value: req.Name},
		{Label: "Email", Value: req.Email},
		{Label: "Téléphone", Value: req.Phone},
		{Label: "Service demandé", Value: req.Service},
	}

	data := notifyData{
		Title:    "Nouveau message de contact",
		Accent:   brandColor,
		Fields:   fields,
		ExtraTag: "Message",
	}
	if req.Details != "" {
		data.Extra = nl2br(req.Details)
	}

	htmlBody, err := renderNotification(data)
	if err != nil {
		return nil, err
	}

	return &Notification{
		Subject: fmt.Sprintf("Nouveau message de contact — %s", req.Name),
		HTML:    htmlBody,
		Text:    renderText(data.Title, fields, data.ExtraTag, req.Details),
	}, nil
}

// InscriptionNotification renders the staff email for an inscription
// request. The additional info section is omitted entirely when empty.
func InscriptionNotification(req *InscriptionRequest) (*Notification, error) {
	fields := []notifyField{
		{Label: "Nom du parent", Value: req.ParentName},
		{Label: "Email du parent", Value: req.ParentEmail},
		{Label: "Téléphone du parent", Value: req.ParentPhone},
		{Label: "Nom de l'enfant", Value: req.ChildName},
		{Label: "Date de naissance", Value: req.ChildBirthDate},
		{Label: "Date de début souhaitée", Value: req.StartDate},
		{Label: "Type de service", Value: req.ServiceType},
	}

	data := notifyData{
		Title:    "Nouvelle demande d'inscription",
		Accent:   ctaColor,
		Fields:   fields,
		ExtraTag: "Informations Supplémentaires",
	}
	if req.AdditionalInfo != "" {
		data.Extra = nl2br(req.AdditionalInfo)
	}

	htmlBody, err := renderNotification(data)
	if err != nil {
		return nil, err
	}

	return &Notification{
		Subject: fmt.Sprintf("Nouvelle demande d'inscription — %s", req.ChildName),
		HTML:    htmlBody,
		Text:    renderText(data.Title, fields, data.ExtraTag, req.AdditionalInfo),
	}, nil
}
