package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	OESDSN            string
	LogLevel          string
	LogPretty         bool
	StalePackSchedule string
	StalePackAge      string
}
