package email

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"raffle/internal/application/notification"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/markdown"
)

const winnerSubject = "Parabéns, %s! Você ganhou o sorteio %s"

const winnerHTML = `<html>
<body>
	<h2>Parabéns, {{.Name}}!</h2>
	<p>Seu número <strong>{{.Ticket}}</strong> foi sorteado na rifa <strong>{{.Title}}</strong>.</p>
	<ul>
		<li>Prêmio: {{.PrizeName}} ({{.PrizeValue}})</li>
		<li>Total de números: {{.TotalEntries}}</li>
		<li>Chance de vitória: {{.WinChance}}</li>
		<li>Data do sorteio: {{.DrawDate}}</li>
		<li>Código da rifa: {{.RaffleID}}</li>
	</ul>
	{{if .DescriptionHTML}}<div>{{.DescriptionHTML}}</div>{{end}}
	<p>Em breve entraremos em contato para combinar a entrega do prêmio.</p>
</body>
</html>`

const winnerPlain = `Parabéns, {{.Name}}!

Seu número {{.Ticket}} foi sorteado na rifa {{.Title}}.

Prêmio: {{.PrizeName}} ({{.PrizeValue}})
Total de números: {{.TotalEntries}}
Chance de vitória: {{.WinChance}}
Data do sorteio: {{.DrawDate}}
Código da rifa: {{.RaffleID}}

Em breve entraremos em contato para combinar a entrega do prêmio.
`

var (
	winnerHTMLTemplate  = htmltemplate.Must(htmltemplate.New("winner_html").Parse(winnerHTML))
	winnerPlainTemplate = texttemplate.Must(texttemplate.New("winner_plain").Parse(winnerPlain))
)

type winnerView struct {
	Name            string
	Title           string
	PrizeName       string
	PrizeValue      string
	Ticket          string
	TotalEntries    string
	WinChance       string
	DrawDate        string
	RaffleID        string
	DescriptionHTML htmltemplate.HTML
}

// WinnerNotifier emails the winner of a raffle over SMTP.
type WinnerNotifier struct {
	smtp     *SMTPEmailService
	renderer markdown.Renderer
	format   formatter
}

var _ notification.WinnerNotifier = (*WinnerNotifier)(nil)

func NewWinnerNotifier(smtp *SMTPEmailService, renderer markdown.Renderer) *WinnerNotifier {
	return &WinnerNotifier{
		smtp:     smtp,
		renderer: renderer,
		format:   newFormatter(smtp.config.Locale, biztime.Location()),
	}
}

func (n *WinnerNotifier) NotifyWinner(ctx context.Context, contact notification.WinnerContact, summary notification.RaffleSummary) error {
	if contact.Email == "" {
		return fmt.Errorf("winner %s has no email address", contact.ParticipantID)
	}

	subject, htmlBody, plainBody, err := n.render(contact, summary)
	if err != nil {
		return err
	}
	return n.smtp.sendEmail(ctx, contact.Email, subject, htmlBody, plainBody)
}

func (n *WinnerNotifier) render(contact notification.WinnerContact, summary notification.RaffleSummary) (subject, htmlBody, plainBody string, err error) {
	view := winnerView{
		Name:         contact.Name,
		Title:        summary.Title,
		PrizeName:    summary.PrizeName,
		PrizeValue:   n.format.Money(summary.PrizeValue),
		Ticket:       n.format.Number(summary.WinningTicketNumber),
		TotalEntries: n.format.Number(summary.TotalEntries),
		WinChance:    n.format.Percent(summary.WinChancePercent),
		DrawDate:     n.format.DateTime(drawDateOrNow(summary.DrawDate)),
		RaffleID:     summary.RaffleID,
	}
	if strings.TrimSpace(summary.Description) != "" && n.renderer != nil {
		rendered, err := n.renderer.ToHTML(summary.Description)
		if err != nil {
			return "", "", "", err
		}
		// already sanitized by the renderer
		view.DescriptionHTML = htmltemplate.HTML(rendered)
	}

	var htmlBuf, plainBuf bytes.Buffer
	if err := winnerHTMLTemplate.Execute(&htmlBuf, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render winner email: %w", err)
	}
	if err := winnerPlainTemplate.Execute(&plainBuf, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render winner email: %w", err)
	}

	return fmt.Sprintf(winnerSubject, contact.Name, summary.Title), htmlBuf.String(), plainBuf.String(), nil
}

func drawDateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return biztime.NowUTC()
	}
	return t
}
