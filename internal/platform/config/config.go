package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Registration is restricted to emails under this domain.
	SignupEmailDomain string

	// CRM (Salesforce-style) credentials. The client exchanges these for an
	// OAuth token via the password grant.
	CRMLoginURL      string
	CRMClientID      string
	CRMClientSecret  string
	CRMUsername      string
	CRMPassword      string
	CRMSecurityToken string
	CRMAPIVersion    string

	// Org-search provider (session-token auth).
	OrgSearchBaseURL    string
	OrgSearchUsername   string
	OrgSearchPassword   string
	OrgSearchPartnerKey string

	// Enrichment provider (API-key auth).
	EnrichBaseURL string
	EnrichAPIKey  string

	// Seed CRM user assigned as prospecting rep when the CRM omits one.
	DefaultPrepID string

	// Scheduled jobs.
	JobsEnabled bool
	JobSchedule string

	// Requests-per-period limit for the public API, in ulule/limiter
	// notation (e.g. "300-H").
	APIRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "prospectr")
	viper.SetDefault("SIGNUP_EMAIL_DOMAIN", "@prospectr.app")
	viper.SetDefault("CRM_LOGIN_URL", "https://login.salesforce.com")
	viper.SetDefault("CRM_API_VERSION", "v52.0")
	viper.SetDefault("ORG_SEARCH_BASE_URL", "https://papi.discoverydb.com/papi")
	viper.SetDefault("ENRICH_BASE_URL", "https://api.lusha.co")
	viper.SetDefault("DEFAULT_PREP_ID", "0050V000006j7Jj")
	viper.SetDefault("JOBS_ENABLED", true)
	viper.SetDefault("JOB_SCHEDULE", "@every 10m")
	viper.SetDefault("API_RATE_LIMIT", "300-H")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SignupEmailDomain = viper.GetString("SIGNUP_EMAIL_DOMAIN")

	cfg.CRMLoginURL = viper.GetString("CRM_LOGIN_URL")
	cfg.CRMClientID = viper.GetString("CRM_CLIENT_ID")
	cfg.CRMClientSecret = viper.GetString("CRM_CLIENT_SECRET")
	cfg.CRMUsername = viper.GetString("CRM_USERNAME")
	cfg.CRMPassword = viper.GetString("CRM_PASSWORD")
	cfg.CRMSecurityToken = viper.GetString("CRM_SECURITY_TOKEN")
	cfg.CRMAPIVersion = viper.GetString("CRM_API_VERSION")
	if cfg.CRMUsername == "" {
		log.Println("Warning: CRM_USERNAME not set. CRM sync jobs will fail to authenticate.")
	}

	cfg.OrgSearchBaseURL = viper.GetString("ORG_SEARCH_BASE_URL")
	cfg.OrgSearchUsername = viper.GetString("ORG_SEARCH_USERNAME")
	cfg.OrgSearchPassword = viper.GetString("ORG_SEARCH_PASSWORD")
	cfg.OrgSearchPartnerKey = viper.GetString("ORG_SEARCH_PARTNER_KEY")

	cfg.EnrichBaseURL = viper.GetString("ENRICH_BASE_URL")
	cfg.EnrichAPIKey = viper.GetString("ENRICH_API_KEY")
	if cfg.EnrichAPIKey == "" {
		log.Println("Warning: ENRICH_API_KEY not set. Contact enrichment will be skipped.")
	}

	cfg.DefaultPrepID = viper.GetString("DEFAULT_PREP_ID")
	cfg.JobsEnabled = viper.GetBool("JOBS_ENABLED")
	cfg.JobSchedule = viper.GetString("JOB_SCHEDULE")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	return cfg, nil
}
