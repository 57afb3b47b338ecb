package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "debug", Output: &buf})

	log.Info("endereçamento criado", "addressId", "A1", "packageId", "P1")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "endereçamento criado", entry["message"])
	assert.Equal(t, "A1", entry["addressId"])
	assert.Equal(t, "P1", entry["packageId"])
}

func TestLogger_ErrorValuesAreStringified(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Output: &buf})

	log.Error("falha no backend", "error", errors.New("timeout"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "timeout", entry["error"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "warn", Output: &buf})

	log.Debug("não aparece")
	log.Info("também não")
	assert.Empty(t, buf.String())

	log.Warn("aparece")
	assert.Contains(t, buf.String(), "aparece")
}

func TestLogger_OddKeysAndValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Output: &buf})

	log.Info("sem valor", "orphan")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "(MISSING)", entry["orphan"])
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("x", "k", "v")
		log.Error("x")
	})
}
