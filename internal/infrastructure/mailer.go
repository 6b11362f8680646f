package infrastructure

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"book-api/internal/application/interfaces"
	"book-api/internal/domain/entities"
)

// Mailer sends the welcome email after registration via SendGrid.
type Mailer struct {
	apiKey     string
	senderName string
	senderAddr string
}

// NewMailer returns nil when no API key is configured; callers treat a
// nil mailer as "mail disabled".
func NewMailer(apiKey, senderName, senderAddr string) interfaces.WelcomeMailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{
		apiKey:     apiKey,
		senderName: senderName,
		senderAddr: senderAddr,
	}
}

func (m *Mailer) SendWelcome(user *entities.User) error {
	from := mail.NewEmail(m.senderName, m.senderAddr)
	subject := "Bienvenue !"
	to := mail.NewEmail(user.Name, user.Email)

	greeting := fmt.Sprintf("Bonjour %s, votre compte est prêt.", user.Name)
	if user.UsesProfessionalEmail() {
		greeting = fmt.Sprintf("Bonjour %s, votre compte professionnel est prêt.", user.Name)
	}

	message := mail.NewSingleEmail(from, subject, to, greeting,
		fmt.Sprintf("<strong>%s</strong>", greeting))
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}

	log.Println("Welcome email sent. Status Code:", response.StatusCode)
	return nil
}
