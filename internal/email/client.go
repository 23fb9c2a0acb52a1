package email

import (
	"crypto/tls"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Client sends transactional mail over SMTP.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates an SMTP client. The port arrives as a string because it
// comes straight from the environment.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends one HTML message.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error setting sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("error setting recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error creating SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending mail (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// SendBookingConfirmation sends the post-commit confirmation to the guest.
// The booking itself already succeeded upstream; callers treat a send
// failure as a logged warning, not a booking failure.
func (c *Client) SendBookingConfirmation(to, guestName, rateName, checkIn, checkOut string) error {
	subject := fmt.Sprintf("Booking confirmed - %s", c.fromName)
	htmlBody := confirmationHTML(guestName, rateName, checkIn, checkOut)

	return c.SendEmail(to, subject, htmlBody)
}

func confirmationHTML(guestName, rateName, checkIn, checkOut string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Booking Confirmed</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background-color: #1f2937; padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">Booking Confirmed</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">Thank you for booking with us</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 40px 30px;">
							<p style="color: #333;">Dear %s,</p>
							<p style="color: #333;">Your reservation has been created. Here are your stay details:</p>
							<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f8f9fa; border-radius: 8px; padding: 20px;">
								<tr>
									<td style="padding: 8px 20px;"><strong>Rate:</strong></td>
									<td style="padding: 8px 20px; text-align: right;">%s</td>
								</tr>
								<tr>
									<td style="padding: 8px 20px;"><strong>Check-in:</strong></td>
									<td style="padding: 8px 20px; text-align: right;">%s</td>
								</tr>
								<tr>
									<td style="padding: 8px 20px;"><strong>Check-out:</strong></td>
									<td style="padding: 8px 20px; text-align: right;">%s</td>
								</tr>
							</table>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0; color: #999; font-size: 12px;">
								This is an automated message, please do not reply directly.
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`, guestName, rateName, checkIn, checkOut)
}
