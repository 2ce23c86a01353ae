package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// chatRequestSchema mirrors the body accepted by POST /api/chat
const chatRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["message"],
  "properties": {
    "message": {"type": "string", "minLength": 1},
    "language": {"type": "string", "enum": ["en", "hi"]},
    "context": {
      "type": "object",
      "properties": {
        "farmRisk": {
          "type": "object",
          "required": ["overallRisk", "riskScore", "factors"],
          "properties": {
            "overallRisk": {"$ref": "#/definitions/riskLevel"},
            "riskScore": {"type": "integer", "minimum": 0, "maximum": 100},
            "factors": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["name", "impact", "severity"],
                "properties": {
                  "name": {"type": "string"},
                  "impact": {"type": "string"},
                  "severity": {"$ref": "#/definitions/riskLevel"}
                }
              }
            },
            "lastUpdated": {"type": "string"}
          }
        },
        "irrigation": {
          "type": "object",
          "required": ["action", "soilMoisture", "rainProbability"],
          "properties": {
            "action": {"type": "string", "enum": ["IRRIGATE_NOW", "DELAY"]},
            "delayHours": {"type": "integer", "minimum": 0},
            "soilMoisture": {"$ref": "#/definitions/percent"},
            "rainProbability": {"$ref": "#/definitions/percent"},
            "nextRainExpected": {"type": "string"},
            "recommendation": {"type": "string"},
            "weatherForecast": {"type": "array"}
          }
        },
        "market": {
          "type": "object",
          "required": ["action", "currentPrice", "expectedDirection"],
          "properties": {
            "action": {"type": "string", "enum": ["SELL_NOW", "WAIT"]},
            "currentPrice": {"type": "number", "minimum": 0},
            "expectedDirection": {"type": "string", "enum": ["UP", "DOWN", "STABLE"]},
            "priceChange": {"type": "number"},
            "priceChangePercent": {"type": "number"},
            "regionalAverage": {"type": "number"},
            "recommendation": {"type": "string"},
            "priceHistory": {"type": "array"},
            "crop": {"type": "string"}
          }
        }
      }
    }
  },
  "definitions": {
    "riskLevel": {"type": "string", "enum": ["LOW", "MEDIUM", "HIGH"]},
    "percent": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

var chatSchema = mustSchema(chatRequestSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("validation: invalid schema: %v", err))
	}
	return s
}

// FieldError is one schema violation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateChatRequest checks a raw chat request body. It returns a
// *ValidationError for schema violations and a plain error for malformed JSON.
func ValidateChatRequest(body []byte) error {
	result, err := chatSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("validation: malformed document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
