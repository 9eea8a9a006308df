package util

import (
	"os"
	"strings"
)

const environmentPrefix = "MODURO_"

// GetEnvironmentVariables returns the process environment variables that
// belong to this service, keyed by their full MODURO_ prefixed name.
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		if !strings.HasPrefix(pair[0], environmentPrefix) {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}
