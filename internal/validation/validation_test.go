package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "alice@example.com", false},
		{"Valid With Plus", "alice+tag@example.co.uk", false},
		{"Missing At", "alice.example.com", true},
		{"Missing Domain", "alice@", true},
		{"Missing TLD", "alice@example", true},
		{"Empty", "", true},
		{"Too Long", strings.Repeat("a", 95) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername(strings.Repeat("a", 50)))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 51)))
}

func TestValidateTaskStatus(t *testing.T) {
	for _, status := range []string{"pending", "in_progress", "completed"} {
		assert.NoError(t, ValidateTaskStatus(status))
	}
	assert.Error(t, ValidateTaskStatus("archived"))
	assert.Error(t, ValidateTaskStatus(""))
	assert.Error(t, ValidateTaskStatus("Pending"))
}

func TestValidateTaskPriority(t *testing.T) {
	for _, priority := range []string{"low", "medium", "high"} {
		assert.NoError(t, ValidateTaskPriority(priority))
	}
	assert.Error(t, ValidateTaskPriority("urgent"))
	assert.Error(t, ValidateTaskPriority(""))
}
