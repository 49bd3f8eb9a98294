package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDBPoolParams_connString(t *testing.T) {
	testCases := []struct {
		name     string
		params   NewDBPoolParams
		expected string
	}{
		{
			name:     "default user no password",
			params:   NewDBPoolParams{DBHost: "localhost", DBPort: "5432", DBName: "fittrack"},
			expected: "postgres://postgres@localhost:5432/fittrack",
		},
		{
			name: "user and password",
			params: NewDBPoolParams{
				DBHost: "db", DBPort: "5433", DBName: "fittrack",
				DBUser: "fit", DBPassword: "s3cr3t",
			},
			expected: "postgres://fit:s3cr3t@db:5433/fittrack",
		},
		{
			name: "password is escaped",
			params: NewDBPoolParams{
				DBHost: "db", DBPort: "5432", DBName: "fittrack",
				DBUser: "fit", DBPassword: "a@b/c",
			},
			expected: "postgres://fit:a%40b%2Fc@db:5432/fittrack",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.params.connString())
		})
	}
}

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS activity\n")
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS activity_log")
	assert.Contains(t, Schema, "CHECK (kcal_per_hour > 0)")
	assert.Contains(t, Schema, "CHECK (duration_minutes > 0)")
}
