package mailer

import (
	"bytes"
	"html/template"
)

// TemplateData is the payload both notification templates render.
type TemplateData struct {
	RecipientName string
	ProjectCode   string
	CustomerName  string
	ServiceType   string
	CurrentStage  string
	UpdateType    string
	ProjectURL    string
}

const newProjectTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Project Notification</title>
</head>
<body>
  <div class="container">
    <div class="header"><h1>New Project Created</h1></div>
    <div class="content">
      <p>Hello {{.RecipientName}},</p>
      <p>A new project has been created and requires your attention:</p>
      <ul>
        <li><strong>Project ID:</strong> {{.ProjectCode}}</li>
        <li><strong>Customer:</strong> {{.CustomerName}}</li>
        <li><strong>Service Type:</strong> {{.ServiceType}}</li>
        <li><strong>Current Stage:</strong> {{.CurrentStage}}</li>
      </ul>
      <p>Please review the project details and take necessary actions.</p>
      <a href="{{.ProjectURL}}">View Project</a>
    </div>
    <div class="footer">
      <p>This is an automated message from the ISP Project Management System.</p>
    </div>
  </div>
</body>
</html>`

const updatedProjectTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Project Updated Notification</title>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Project Updated</h1></div>
    <div class="content">
      <p>Hello {{.RecipientName}},</p>
      <p>A project has been updated and requires your attention:</p>
      <ul>
        <li><strong>Project ID:</strong> {{.ProjectCode}}</li>
        <li><strong>Customer:</strong> {{.CustomerName}}</li>
        <li><strong>Service Type:</strong> {{.ServiceType}}</li>
        <li><strong>Current Stage:</strong> {{.CurrentStage}}</li>
        <li><strong>Update Type:</strong> {{.UpdateType}}</li>
      </ul>
      <p>Please review the project updates and take necessary actions.</p>
      <a href="{{.ProjectURL}}">View Project</a>
    </div>
    <div class="footer">
      <p>This is an automated message from the ISP Project Management System.</p>
    </div>
  </div>
</body>
</html>`

var (
	newProjectTmpl     = template.Must(template.New("new-project").Parse(newProjectTemplate))
	updatedProjectTmpl = template.Must(template.New("updated-project").Parse(updatedProjectTemplate))
)

func RenderNewProject(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := newProjectTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderProjectUpdate(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := updatedProjectTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
