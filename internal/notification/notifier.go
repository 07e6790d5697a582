package notification

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	subjectPending    = "Solicitação de Agendamento Recebida"
	subjectNewRequest = "Ação Necessária: Novo Agendamento"
	subjectConfirmed  = "Agendamento Confirmado"
	subjectReminder   = "Lembrete: seu horário é amanhã"

	sendTimeout = 15 * time.Second
)

// Notifier renders booking emails and hands them to a single background
// worker. Nothing here ever returns an error to the caller.
type Notifier struct {
	mailer       Mailer
	loc          *time.Location
	dashboardURL string

	queue chan Message
	wg    sync.WaitGroup
}

func NewNotifier(mailer Mailer, loc *time.Location, dashboardURL string) *Notifier {
	n := &Notifier{
		mailer:       mailer,
		loc:          loc,
		dashboardURL: dashboardURL,
		queue:        make(chan Message, 100),
	}

	n.wg.Add(1)
	go n.worker()
	return n
}

func (n *Notifier) worker() {
	defer n.wg.Done()

	for msg := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := n.mailer.Send(ctx, msg); err != nil {
			log.Printf("email to %s failed: %v", msg.To, err)
		}
		cancel()
	}
}

// Close flushes queued emails. No method may be called afterwards.
func (n *Notifier) Close() {
	close(n.queue)
	n.wg.Wait()
}

// BookingRequested tells the client the request was received and the
// barber that it needs an answer. b must have Client and Barber loaded.
func (n *Notifier) BookingRequested(b *models.Booking) {
	date := n.formatDate(b.Date)

	n.enqueue(b.Client.Email, subjectPending, "pending", emailData{
		Name:    b.Client.Name,
		Date:    date,
		Service: b.Service.Name,
	})

	n.enqueue(b.Barber.Email, subjectNewRequest, "new_request", emailData{
		Name:         b.Barber.Name,
		ClientName:   b.Client.Name,
		Date:         date,
		DashboardURL: n.dashboardURL,
	})
}

func (n *Notifier) BookingConfirmed(b *models.Booking) {
	n.enqueue(b.Client.Email, subjectConfirmed, "confirmed", emailData{
		Name: b.Client.Name,
		Date: n.formatDate(b.Date),
	})
}

func (n *Notifier) Reminder(b *models.Booking) {
	n.enqueue(b.Client.Email, subjectReminder, "reminder", emailData{
		Name: b.Client.Name,
		Date: n.formatDate(b.Date),
	})
}

func (n *Notifier) enqueue(to, subject, tmpl string, data emailData) {
	if to == "" {
		return
	}

	html, err := render(tmpl, data)
	if err != nil {
		log.Printf("email template %s: %v", tmpl, err)
		return
	}

	select {
	case n.queue <- Message{To: to, Subject: subject, HTML: html}:
	default:
		log.Printf("email queue full, dropping %q to %s", subject, to)
	}
}

func (n *Notifier) formatDate(t time.Time) string {
	return t.In(n.loc).Format("02/01/2006 15:04")
}
