package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Relay configures the upload relay in front of the GitHub repository.
type Relay struct {
	HTTP     HTTP
	Logger   Logger
	GitHub   GitHub
	Upload   Upload
	Postgres Postgres
	Kafka    Kafka
	Admin    Admin
	Jobs     Jobs
}

// Signer configures the interactive signing client.
type Signer struct {
	Logger            Logger
	RelayURL          string        `env:"RELAY_URL" envDefault:""`
	RelayTimeout      time.Duration `env:"RELAY_TIMEOUT" envDefault:"60s"`
	RemoteDir         string        `env:"REMOTE_DIR" envDefault:"contratos"`
	OutputDir         string        `env:"OUTPUT_DIR" envDefault:"."`
	WhatsAppRecipient string        `env:"WHATSAPP_RECIPIENT" envDefault:"5544997112467"`
	Template          Template
}

// Notifier configures the e-mail notifier fed by the contract-uploaded topic.
type Notifier struct {
	Logger   Logger
	Kafka    Kafka
	Mailer   Mailer
	NotifyTo []string `env:"NOTIFY_EMAIL_TO"`
}

type HTTP struct {
	Port int `env:"PORT" envDefault:"3000"`
	// FrontendOrigins is the CORS allowlist; requests from other origins get
	// no Access-Control-Allow-Origin header.
	FrontendOrigins []string      `env:"FRONTEND_ORIGINS" envDefault:"https://psigiovana.github.io"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"60s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type GitHub struct {
	// Token authorizes every contents API call.
	Token string `env:"GITHUB_TOKEN"`
	// Repo is the target repository as owner/name.
	Repo string `env:"GITHUB_REPO"`
	// Branch receives the commits and is the ref for reads.
	Branch        string        `env:"GITHUB_BRANCH" envDefault:"main"`
	Dir           string        `env:"GITHUB_DIR" envDefault:"contratos"`
	APIURL        string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	Timeout       time.Duration `env:"GITHUB_TIMEOUT" envDefault:"30s"`
	RetryAttempts int           `env:"GITHUB_RETRY_ATTEMPTS" envDefault:"2"`
}

type Upload struct {
	// MaxBytes caps the decoded contract size. 95 MiB keeps the base64 body
	// under GitHub's 100 MiB contents API limit.
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"99614720"`
}

type Postgres struct {
	// DSN enables the upload journal when set.
	DSN      string `env:"POSTGRES_DSN" envDefault:""`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"5"`
}

type Kafka struct {
	// Brokers enables contract-uploaded events when set.
	Brokers               []string `env:"KAFKA_BROKERS" envDefault:""`
	ConsumerID            string   `env:"KAFKA_CONSUMER_ID" envDefault:"contratos-notifier"`
	ContractUploadedTopic string   `env:"KAFKA_CONTRACT_UPLOADED_TOPIC" envDefault:"contract-uploaded"`
}

type Admin struct {
	// JWTSecret signs the bearer tokens accepted on the listing routes. The
	// routes answer 401 while it is empty.
	JWTSecret string `env:"ADMIN_JWT_SECRET" envDefault:""`
}

type Jobs struct {
	// StoredContractsInterval refreshes the stored contracts gauge; zero
	// disables the job.
	StoredContractsInterval time.Duration `env:"JOB_STORED_CONTRACTS_INTERVAL" envDefault:"10m"`
}

type Mailer struct {
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Contratos"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
}

// Template carries the values printed in the contract text.
type Template struct {
	ProfessionalName  string          `env:"PROFESSIONAL_NAME" envDefault:"Giovana de Morais"`
	Registration      string          `env:"PROFESSIONAL_CRP" envDefault:"08/45995"`
	City              string          `env:"CONTRACT_CITY" envDefault:"Maringá"`
	State             string          `env:"CONTRACT_STATE" envDefault:"PR"`
	SocialFee         decimal.Decimal `env:"FEE_SOCIAL" envDefault:"80.00"`
	StandardFee       decimal.Decimal `env:"FEE_STANDARD" envDefault:"100.00"`
	PaymentDay        int             `env:"PAYMENT_DAY" envDefault:"10"`
	SessionMinutes    int             `env:"SESSION_MINUTES" envDefault:"50"`
	CancelNoticeHours int             `env:"CANCEL_NOTICE_HOURS" envDefault:"24"`
}

func NewRelay(envPath string) (Relay, error) {
	c, err := parse[Relay](envPath)
	if err != nil {
		return Relay{}, err
	}

	owner, name, ok := strings.Cut(c.GitHub.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Relay{}, fmt.Errorf("GITHUB_REPO must be owner/name, got %q", c.GitHub.Repo)
	}

	if c.Upload.MaxBytes <= 0 {
		return Relay{}, fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", c.Upload.MaxBytes)
	}

	return c, nil
}

func NewSigner(envPath string) (Signer, error) {
	return parse[Signer](envPath)
}

func NewNotifier(envPath string) (Notifier, error) {
	c, err := parse[Notifier](envPath)
	if err != nil {
		return Notifier{}, err
	}

	if len(c.Kafka.Brokers) == 0 {
		return Notifier{}, errors.New("KAFKA_BROKERS is required")
	}

	return c, nil
}

func parse[T any](envPath string) (T, error) {
	var zero T

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zero, err
	}

	c, err := env.ParseAsWithOptions[T](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return zero, err
	}

	return c, nil
}
