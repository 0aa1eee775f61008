package config

// Defaults used when neither the environment nor a .env file sets a value.
const (
	// DefaultDSN opens a SQLite file next to the binary with foreign keys on.
	DefaultDSN = "file:bookshop.db?_foreign_keys=on"

	// DefaultDataFile is the bulk file loaded by the run and load commands.
	DefaultDataFile = "./data/tests_data.json"

	// DefaultEnvFile is read before the environment, if it exists.
	DefaultEnvFile = ".env"
)
