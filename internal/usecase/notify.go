package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"

	"tavola-api/internal/domain/reservation"
	"tavola-api/internal/usecase/readmodel"
)

type reservationEmail struct {
	Subject   string
	PlainBody string
	HTMLBody  string
}

type reservationEmailData struct {
	Name     string
	Date     string
	Time     string
	Guests   string
	Accepted bool
}

var reservationEmailTmpl = template.Must(template.New("reservation_email").Parse(`<html>
<body style="font-family: Georgia, serif; color: #2b2b2b;">
  <h2>Hello {{.Name}},</h2>
  {{if .Accepted}}
  <p>Your table is confirmed. We look forward to welcoming you!</p>
  <ul>
    <li><strong>Date:</strong> {{.Date}}</li>
    <li><strong>Time:</strong> {{.Time}}</li>
    <li><strong>Guests:</strong> {{.Guests}}</li>
  </ul>
  <p>If your plans change, please let us know.</p>
  {{else}}
  <p>We are very sorry — we are unable to accommodate your reservation for
  {{.Date}} at {{.Time}}.</p>
  <p>Please give us a call or pick another slot; we would love to have you.</p>
  {{end}}
  <p>Warm regards,<br>The Tavola team</p>
</body>
</html>`))

func buildReservationEmail(rm *readmodel.ReservationRM, status reservation.Status) reservationEmail {
	accepted := status == reservation.StatusAccepted

	var subject, plain string
	if accepted {
		subject = "Your reservation is confirmed"
		plain = fmt.Sprintf(
			"Hello %s,\n\nYour table is confirmed.\n\n"+
				"Date: %s\nTime: %s\nGuests: %s\n\n"+
				"If your plans change, please let us know.\n\nThe Tavola team",
			rm.Name, rm.Date, rm.Time, rm.Guests,
		)
	} else {
		subject = "About your reservation request"
		plain = fmt.Sprintf(
			"Hello %s,\n\nWe are very sorry - we are unable to accommodate your "+
				"reservation for %s at %s.\n\n"+
				"Please give us a call or pick another slot; we would love to have you.\n\n"+
				"The Tavola team",
			rm.Name, rm.Date, rm.Time,
		)
	}

	var htmlBuf bytes.Buffer
	err := reservationEmailTmpl.Execute(&htmlBuf, reservationEmailData{
		Name:     rm.Name,
		Date:     rm.Date,
		Time:     rm.Time,
		Guests:   rm.Guests,
		Accepted: accepted,
	})
	if err != nil {
		// Plain text still goes out; the template is static so this should
		// not happen outside of template edits.
		slog.Error("failed to render reservation email template", "error", err)
	}

	return reservationEmail{
		Subject:   subject,
		PlainBody: plain,
		HTMLBody:  htmlBuf.String(),
	}
}
