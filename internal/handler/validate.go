package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/qri-io/jsonschema"
)

// maxBodyBytes caps request bodies read by the JSON handlers.
const maxBodyBytes = 1 << 20

// Patterns are embedded in JSON schema text, hence the doubled escapes.
const (
	emailPattern = `^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$`
	// nonBlank rejects values made only of whitespace.
	nonBlank = `\\S`
)

var (
	createUserSchema = mustSchema(`{
		"type": "object",
		"required": ["name", "email"],
		"properties": {
			"name":  {"type": "string", "minLength": 1, "maxLength": 100, "pattern": "` + nonBlank + `"},
			"email": {"type": "string", "maxLength": 150, "pattern": "` + emailPattern + `"},
			"role":  {"type": "string", "maxLength": 50}
		}
	}`)

	updateStatusSchema = mustSchema(`{
		"type": "object",
		"required": ["status"],
		"properties": {
			"status": {"type": "string", "enum": ["active", "inactive"]}
		}
	}`)

	contactSchema = mustSchema(`{
		"type": "object",
		"required": ["name", "email", "subject", "message"],
		"properties": {
			"name":    {"type": "string", "minLength": 1, "maxLength": 100, "pattern": "` + nonBlank + `"},
			"email":   {"type": "string", "maxLength": 150, "pattern": "` + emailPattern + `"},
			"subject": {"type": "string", "minLength": 1, "maxLength": 200, "pattern": "` + nonBlank + `"},
			"message": {"type": "string", "minLength": 1, "maxLength": 5000, "pattern": "` + nonBlank + `"}
		}
	}`)
)

func mustSchema(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(fmt.Sprintf("handler: invalid schema: %v", err))
	}
	return rs
}

// errInvalidJSON marks a body that is not parseable JSON.
var errInvalidJSON = errors.New("invalid JSON")

// validationError lists the schema violations of a request body.
type validationError struct {
	details []string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("%d validation errors", len(e.details))
}

// decodeValid reads the request body, checks it against schema and decodes
// it into dst.
func decodeValid(ctx context.Context, r *http.Request, schema *jsonschema.Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidJSON
	}
	if !json.Valid(body) {
		return errInvalidJSON
	}

	keyErrs, err := schema.ValidateBytes(ctx, body)
	if err != nil {
		return errInvalidJSON
	}
	if len(keyErrs) > 0 {
		details := make([]string, 0, len(keyErrs))
		for _, ke := range keyErrs {
			details = append(details, ke.PropertyPath+": "+ke.Message)
		}
		return &validationError{details: details}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

// writeDecodeError answers a decodeValid failure with 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	var ve *validationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request body",
			"details": ve.details,
		})
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid JSON")
}
