package notification

// Well-known template names.
const (
	TemplateBookingConfirmation      = "booking_confirmation"
	TemplateAdminBookingNotification = "admin_booking_notification"
	TemplateBookingConfirmationSMS   = "booking_confirmation_sms"
	TemplateBookingReminderSMS       = "booking_reminder_sms"
	TemplateContactMessage           = "contact_message"
)

// Standard token names filled from a booking and its service.
const (
	TokenUserName           = "user_name"
	TokenEmail              = "email"
	TokenPhoneNumber        = "phone_number"
	TokenServiceName        = "service_name"
	TokenServicePrice       = "service_price"
	TokenServiceDescription = "service_description"
	TokenStartTime          = "start_time"
	TokenEndTime            = "end_time"
	TokenBookingID          = "booking_id"
	TokenStatus             = "status"
	TokenNumPeople          = "num_people"
	TokenSiteName           = "site_name"
	TokenMessage            = "message"
)

var builtins = map[string]*Template{
	TemplateBookingConfirmation: {
		name:    TemplateBookingConfirmation,
		subject: "🌟 Booking Confirmation - {service_name}",
		body: `Hello {user_name},

Thank you for booking with {site_name}! ✨

📌 Service: {service_name}
💰 Price: {service_price}
🕒 Start: {start_time}
🕒 End: {end_time}

We look forward to seeing you!

Best regards,
- The {site_name} Team

If you need to reschedule or have any questions, please contact us.`,
		description: "Booking confirmation email sent to customers",
	},
	TemplateAdminBookingNotification: {
		name:    TemplateAdminBookingNotification,
		subject: "📩 New Booking Received",
		body: `A new booking was created!

📌 Service: {service_name}
📅 Date: {start_time} - {end_time}
👤 Customer: {user_name}
📧 Email: {email}
📱 Phone: {phone_number}
👥 People: {num_people}
💰 Price: {service_price}

Booking #{booking_id} is {status}.`,
		description: "Notice sent to the site administrator for every new booking",
	},
	TemplateBookingConfirmationSMS: {
		name:    TemplateBookingConfirmationSMS,
		subject: "Booking confirmation",
		body: `Hello {user_name}!

Your booking has been confirmed:
📅 Service: {service_name}
🕒 Time: {start_time}

We look forward to seeing you!

- {site_name} Team`,
		description: "Confirmation text message sent when a phone number is provided",
	},
	TemplateBookingReminderSMS: {
		name:    TemplateBookingReminderSMS,
		subject: "Appointment reminder",
		body: `Hello {user_name},

This is a reminder: your appointment is at {start_time}.

See you soon!

- {site_name} Team`,
		description: "Reminder text message sent shortly before the appointment",
	},
	TemplateContactMessage: {
		name:        TemplateContactMessage,
		subject:     "✉️ New contact message from {user_name}",
		body:        "From: {user_name} <{email}>\n\n{message}",
		description: "Contact form submission forwarded to the administrator",
	},
}

var genericDefault = &Template{
	name:    "default",
	subject: "Message from {site_name}",
	body:    "Hello {user_name},\n\n{message}\n\n- {site_name}",
}

// DefaultTemplate returns the built-in template for name, or a generic one for unknown names.
func DefaultTemplate(name string) *Template {
	if t, ok := builtins[name]; ok {
		cp := *t
		return &cp
	}
	cp := *genericDefault
	cp.name = name
	return &cp
}

func HasBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// BuiltinNames is used to seed the template table.
func BuiltinNames() []string {
	return []string{
		TemplateBookingConfirmation,
		TemplateAdminBookingNotification,
		TemplateBookingConfirmationSMS,
		TemplateBookingReminderSMS,
		TemplateContactMessage,
	}
}
