package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port            string
	DataFile        string // JSON snapshot the dataset loads from
	CSVFile         string // optional CSV source for refreshes
	SpreadsheetID   string
	SheetName       string
	CredentialsPath string // Google service account key file
	GeminiAPIKey    string
	APIKey          string // guards the data refresh endpoint when set
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// LoadFromEnv populates AppConfig from environment variables, applying
// defaults where a variable is unset.
func LoadFromEnv() {
	AppConfig = Config{
		Port:            getenv("PORT", "3000"),
		DataFile:        getenv("DATA_FILE", "sales_data.json"),
		CSVFile:         os.Getenv("CSV_FILE"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SheetName:       os.Getenv("SHEET_NAME"),
		CredentialsPath: getenv("CREDENTIALS_PATH", "credentials.json"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		APIKey:          os.Getenv("API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
