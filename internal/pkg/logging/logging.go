package logging

import "go.uber.org/zap"

// New builds the process logger. Development mode gets the human-readable
// console encoder, everything else the production JSON encoder.
func New(environment string) (*zap.Logger, error) {
	if environment == "development" || environment == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
