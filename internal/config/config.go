package config

import (
	"fmt"
	"os"
)

// Config holds every identifier and credential the gateway needs. It is
// built once in main and passed down read-only; nothing mutates it afterwards.
type Config struct {
	ServerPort   string
	AllowOrigins string

	// Connector API (PMS)
	MewsBaseURL    string
	ClientToken    string
	AccessToken    string
	ClientName     string
	StaysServiceID string

	// Booking Engine (distributor) API
	BookingEngineClient string
	HotelID             string
	ConfigurationID     string
	ImageBaseURL        string

	// Display locale preferences and currency fallback order
	PrimaryLocale     string
	SecondaryLocale   string
	PrimaryCurrency   string
	SecondaryCurrency string

	// Curated rate plan ids promoted to the top of listings
	FeaturedRateIDs []string

	// SMTP (optional; confirmation emails are skipped when empty)
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

// LoadConfig reads the environment, applying the demo-environment defaults
// for everything that is safe to default. Tokens have no default on purpose.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),

		MewsBaseURL:    getEnv("MEWS_BASE_URL", "https://api.mews-demo.com"),
		ClientToken:    os.Getenv("MEWS_CLIENT_TOKEN"),
		AccessToken:    os.Getenv("MEWS_ACCESS_TOKEN"),
		ClientName:     getEnv("MEWS_CLIENT", "booking-gateway/1.0.0"),
		StaysServiceID: getEnv("MEWS_STAYS_SERVICE_ID", "764642e9-7ef2-4ccc-8a53-ab3a00b6e42b"),

		BookingEngineClient: getEnv("MEWS_BE_CLIENT", "My Client 1.0.0"),
		HotelID:             getEnv("MEWS_HOTEL_ID", "3edbe1b4-6739-40b7-81b3-d369d9469c48"),
		ConfigurationID:     getEnv("MEWS_CONFIGURATION_ID", "93e27b6f-cba7-4e0b-a24a-819e1b7b388a"),
		ImageBaseURL:        getEnv("MEWS_IMAGE_BASE", "https://cdn.mews-demo.com/Media/Image"),

		PrimaryLocale:     getEnv("DISPLAY_LOCALE", "en-US"),
		SecondaryLocale:   getEnv("DISPLAY_LOCALE_FALLBACK", "en-GB"),
		PrimaryCurrency:   getEnv("DISPLAY_CURRENCY", "USD"),
		SecondaryCurrency: getEnv("DISPLAY_CURRENCY_FALLBACK", "EUR"),

		FeaturedRateIDs: []string{
			"60af06cd-0889-4560-a72b-ab3a00b6e90f", // Fully Flexible Rate
			"2ae098c8-5b8c-4622-8141-ab3a00c6457e", // Non-Refundable
			"12f42bd4-e581-4961-8dfe-ab3a00cea0c1", // Breakfast Included - flexible
			"efd5de0d-36ee-4271-92a2-ab3a00ceed24", // Breakfast Included - non-refundable
			"60fa4e51-51c7-4e06-a753-abab00cad949", // Weekend Culinary Package
			"aac0dfce-82a5-4798-b643-abbe008b7098", // Direct Booking
		},

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Booking Gateway"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}

	if cfg.StaysServiceID == "" {
		return nil, fmt.Errorf("MEWS_STAYS_SERVICE_ID must not be empty")
	}
	if cfg.HotelID == "" {
		return nil, fmt.Errorf("MEWS_HOTEL_ID must not be empty")
	}

	return cfg, nil
}

// LocalePreferences returns the ordered locale codes used to resolve
// localized upstream text.
func (c *Config) LocalePreferences() []string {
	return []string{c.PrimaryLocale, c.SecondaryLocale}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
