package gmail

// Config holds Gmail SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
//
// AppPassword is a Google "app password", not the account password;
// regular passwords are rejected by smtp.gmail.com.
type Config struct {
	Email       string `env:"GMAIL_EMAIL"`
	AppPassword string `env:"GMAIL_APP_PASSWORD"`
	Host        string `env:"GMAIL_SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port        int    `env:"GMAIL_SMTP_PORT" envDefault:"465"`
}
