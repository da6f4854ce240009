package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("Should parse a clean JSON object", func(t *testing.T) {
		got := ExtractJSONObject(`{"firstName":"Priya"}`)
		assert.Equal(t, "Priya", got["firstName"])
	})

	t.Run("Should strip surrounding prose", func(t *testing.T) {
		raw := `Here is the extracted data: {"email":"priya@example.com"} Hope this helps!`
		got := ExtractJSONObject(raw)
		assert.Equal(t, "priya@example.com", got["email"])
	})

	t.Run("Should strip a markdown code fence", func(t *testing.T) {
		raw := "```json\n{\"phone\":\"+91 98765 43210\"}\n```"
		got := ExtractJSONObject(raw)
		assert.Equal(t, "+91 98765 43210", got["phone"])
	})

	t.Run("Should keep nested objects intact", func(t *testing.T) {
		raw := `{"personalInfo":{"firstName":"Arun"},"skills":[{"name":"Go"}]}`
		got := ExtractJSONObject(raw)
		assert.Contains(t, got, "personalInfo")
		assert.Contains(t, got, "skills")
	})

	t.Run("Should return empty map when there are no braces", func(t *testing.T) {
		got := ExtractJSONObject("I could not find any structured data in this document.")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should return empty map when the span does not parse", func(t *testing.T) {
		got := ExtractJSONObject(`{"firstName": "Priya", "lastName": }`)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should return empty map for empty input", func(t *testing.T) {
		got := ExtractJSONObject("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestBuildExtractionPrompt(t *testing.T) {
	t.Run("Should embed the resume text", func(t *testing.T) {
		prompt := BuildExtractionPrompt("Priya Sharma, Senior Engineer", 15000)
		assert.Contains(t, prompt, "Priya Sharma, Senior Engineer")
		assert.Contains(t, prompt, "Return ONLY valid JSON")
	})

	t.Run("Should truncate text beyond the limit", func(t *testing.T) {
		long := make([]byte, 200)
		for i := range long {
			long[i] = 'a'
		}
		prompt := BuildExtractionPrompt(string(long), 100)
		assert.NotContains(t, prompt, string(long))
		assert.Contains(t, prompt, string(long[:100]))
	})
}
