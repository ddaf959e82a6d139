package notifications

import (
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recordMailer struct {
	sent []sentMail
	err  error
}

func (m *recordMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func bookingCreatedDelivery(t *testing.T, ev BookingCreated) amqp.Delivery {
	t.Helper()
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return amqp.Delivery{RoutingKey: RKBookingCreated, Body: b}
}

func TestHandleBookingCreatedSendsConfirmation(t *testing.T) {
	mailer := &recordMailer{}
	w := NewWorker(nil, mailer, false)

	d := bookingCreatedDelivery(t, BookingCreated{
		BookingID: 7,
		UserEmail: "guest@example.com",
		ListTitle: "Lakeside Cottage",
	})
	if err := w.Handle(d); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mailer.sent))
	}
	mail := mailer.sent[0]
	if mail.To != "guest@example.com" {
		t.Errorf("to = %q", mail.To)
	}
	if mail.Subject != "Booking Confirmation for Lakeside Cottage" {
		t.Errorf("subject = %q", mail.Subject)
	}
	wantBody := "Hello,\n\nYour booking for Lakeside Cottage has been confirmed. Thank you for using our service!"
	if mail.Body != wantBody {
		t.Errorf("body = %q", mail.Body)
	}
}

func TestHandleUnknownKeySkips(t *testing.T) {
	mailer := &recordMailer{}
	w := NewWorker(nil, mailer, false)

	if err := w.Handle(amqp.Delivery{RoutingKey: "payment.paid", Body: []byte(`{}`)}); err != nil {
		t.Fatalf("unknown key should not error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("expected 0 mails, got %d", len(mailer.sent))
	}
}

func TestHandleMailerFailureReturnsError(t *testing.T) {
	mailer := &recordMailer{err: errors.New("smtp down")}
	w := NewWorker(nil, mailer, false)

	d := bookingCreatedDelivery(t, BookingCreated{BookingID: 1, UserEmail: "a@b.c", ListTitle: "X"})
	if err := w.Handle(d); err == nil {
		t.Fatal("expected error when mailer fails")
	}
}

func TestHandleMalformedPayload(t *testing.T) {
	mailer := &recordMailer{}
	w := NewWorker(nil, mailer, false)

	d := amqp.Delivery{RoutingKey: RKBookingCreated, Body: []byte(`not json`)}
	if err := w.Handle(d); err == nil {
		t.Fatal("expected decode error")
	}
}
