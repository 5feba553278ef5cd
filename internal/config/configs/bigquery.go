package configs

// BigQuery locates the ad performance table. The variables carry no prefix.
type BigQuery struct {
	Project string `env:"GCP_PROJECT"`
	Dataset string `env:"BIGQUERY_DATASET"`
	Table   string `env:"BIGQUERY_TABLE"`
	// CredentialsJSON holds a service account key. Application default
	// credentials are used when it is empty.
	CredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`
	// DateColumn is filtered on when a query carries a date range.
	DateColumn string `env:"BIGQUERY_DATE_COLUMN" envDefault:"date"`
	Location   string `env:"BIGQUERY_LOCATION"`
}
