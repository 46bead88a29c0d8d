package mail

import "fmt"

// OTPMessage is the body of a newsletter verification email.
func OTPMessage(code string, ttlMinutes int) (subject, body string) {
	subject = "Your verification code"
	body = fmt.Sprintf(
		"Your one-time verification code is %s.\n\nIt expires in %d minutes.\n",
		code, ttlMinutes,
	)
	return subject, body
}

// TicketReceivedMessage confirms a support ticket was created.
func TicketReceivedMessage(name, ticketSubject string) (subject, body string) {
	subject = "We received your message"
	body = fmt.Sprintf(
		"Hi %s,\n\nThank you for contacting us. We've received your inquiry about: %s\n\nOur team will respond to you shortly.\n",
		name, ticketSubject,
	)
	return subject, body
}

// TicketReplyMessage notifies a customer of a support reply.
func TicketReplyMessage(name, reply string) (subject, body string) {
	subject = "New reply to your support ticket"
	body = fmt.Sprintf(
		"Hi %s,\n\nOur support team has replied to your inquiry:\n\n%s\n",
		name, reply,
	)
	return subject, body
}
