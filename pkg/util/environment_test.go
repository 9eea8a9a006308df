package util

import "testing"

func TestGetEnvironmentVariablesFiltersToServicePrefix(t *testing.T) {
	t.Setenv("MODURO_TEST_VALUE", "kept")
	t.Setenv("UNRELATED_VALUE", "dropped")

	env := GetEnvironmentVariables()

	if env["MODURO_TEST_VALUE"] != "kept" {
		t.Errorf("MODURO_TEST_VALUE = %q", env["MODURO_TEST_VALUE"])
	}

	if _, found := env["UNRELATED_VALUE"]; found {
		t.Error("variables outside the service prefix should not be returned")
	}
}
