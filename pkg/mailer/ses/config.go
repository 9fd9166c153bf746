package ses

// Config holds AWS SES provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	AccessKey   string `env:"AWS_ACCESS_KEY"`
	SecretKey   string `env:"AWS_SECRET_KEY"`
	Region      string `env:"AWS_REGION" envDefault:"us-east-1"`
	SenderEmail string `env:"AWS_FROM_EMAIL"`
}
