package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xeipuuv/gojsonschema"

	"github.com/seu-repo/mcp-chatbot/internal/domain"
)

// mustSchema compiles a request schema at package init.
func mustSchema(schema map[string]interface{}) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(err)
	}
	return s
}

func str(extra map[string]interface{}) map[string]interface{} {
	prop := map[string]interface{}{"type": "string"}
	for k, v := range extra {
		prop[k] = v
	}
	return prop
}

func integer(min, max int) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "minimum": min, "maximum": max}
}

func object(required []string, props map[string]interface{}) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// bind validates the JSON body against schema and decodes it into out.
// Failures are 400 *fiber.Error values for the ErrorHandler to render.
func bind(c *fiber.Ctx, schema *gojsonschema.Schema, out interface{}) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: request must be a JSON object")
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request: "+strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}
	return nil
}

// respond wraps a provider payload or error in the {"result": ...} envelope.
// Provider failures are part of the result, not HTTP errors.
func respond(c *fiber.Ctx, payload interface{}, err error) error {
	if err != nil {
		return c.JSON(fiber.Map{"result": fiber.Map{"error": domain.ErrorMessage(err)}})
	}
	return c.JSON(fiber.Map{"result": payload})
}
