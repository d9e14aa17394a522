package mail

type LeadNotificationData struct {
	FullName       string
	Email          string
	CompanyName    string
	Industry       string
	InterestInPaid string
	SubmittedAt    string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
