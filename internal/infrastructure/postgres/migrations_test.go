package postgres

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	ms, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)

	assert.Equal(t, 1, ms[0].version)
	assert.Equal(t, "1_iec_schema.sql", ms[0].name)
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].version, ms[i].version, "orden ascendente sin versiones repetidas")
	}

	schema := ms[0].content
	for _, constraint := range []string{constraintCompanyPK, constraintRegistrationPK, constraintRegistrationCode, constraintRegistrationFK} {
		assert.Contains(t, schema, constraint, "la constraint mapeada debe declararse con ese nombre")
	}
}

func TestLoadMigrations_CamposDeLaAutoridadSinLimite(t *testing.T) {
	ms, err := loadMigrations()
	require.NoError(t, err)
	schema := ms[0].content

	for _, col := range []string{
		"company_name", "address", "city", "state", "pincode", "country", "email", "phone",
		"registration_date", "valid_from", "valid_to", "user_email", "user_phone",
	} {
		re := regexp.MustCompile(`(?m)^\s*` + col + `\s+TEXT\b`)
		assert.Regexp(t, re, schema, "columna %s", col)
	}
}
