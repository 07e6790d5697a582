package notification

import (
	"bytes"
	"html/template"
)

type emailData struct {
	Name         string
	ClientName   string
	Date         string
	Service      string
	DashboardURL string
}

var templates = template.Must(template.New("emails").Parse(`
{{define "pending"}}
<div style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #d97706;">Solicitação em Análise</h2>
  <p>Olá, <strong>{{.Name}}</strong>.</p>
  <p>Recebemos seu pedido de agendamento para:</p>
  <div style="background: #fffbeb; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 5px solid #d97706;">
    <p style="margin: 5px 0; color: #92400e;"><strong>Data:</strong> {{.Date}}</p>
    {{if .Service}}<p style="margin: 5px 0; color: #92400e;"><strong>Serviço:</strong> {{.Service}}</p>{{end}}
    <p style="margin: 5px 0; color: #92400e;"><strong>Status:</strong> Pendente de Aprovação</p>
  </div>
  <p>Assim que o barbeiro confirmar, você receberá outro e-mail com a aprovação final.</p>
</div>
{{end}}

{{define "new_request"}}
<div style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #000;">Nova Solicitação!</h2>
  <p>Olá, <strong>{{.Name}}</strong>.</p>
  <p>O cliente <strong>{{.ClientName}}</strong> quer agendar um horário.</p>
  <div style="background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 5px 0;"><strong>{{.Date}}</strong></p>
  </div>
  <p>Por favor, acesse o painel para aprovar ou recusar:</p>
  <a href="{{.DashboardURL}}" style="background-color: #000; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Acessar Painel</a>
</div>
{{end}}

{{define "confirmed"}}
<div style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #16a34a;">Agendamento Confirmado!</h2>
  <p>Olá, <strong>{{.Name}}</strong>.</p>
  <p>Seu horário foi confirmado pelo barbeiro.</p>
  <div style="background: #f0fdf4; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 5px solid #16a34a;">
    <p style="margin: 5px 0;"><strong>Data:</strong> {{.Date}}</p>
  </div>
  <p>Te esperamos lá!</p>
</div>
{{end}}

{{define "reminder"}}
<div style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Lembrete de Agendamento</h2>
  <p>Olá, <strong>{{.Name}}</strong>.</p>
  <p>Passando para lembrar do seu horário amanhã:</p>
  <div style="background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 5px 0;"><strong>{{.Date}}</strong></p>
  </div>
  <p>Caso não possa comparecer, cancele pelo app.</p>
</div>
{{end}}
`))

func render(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
