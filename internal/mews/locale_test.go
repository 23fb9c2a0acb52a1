package mews

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedText_ResolvePlain(t *testing.T) {
	text := PlainText("Fully Flexible Rate")
	assert.Equal(t, "Fully Flexible Rate", text.Resolve([]string{"en-US"}, "Unnamed"))
}

func TestLocalizedText_ResolvePreferredLocale(t *testing.T) {
	text := LocalizedMap(map[string]string{
		"en-US": "Suite",
		"fr-FR": "Suite Deluxe",
	})
	assert.Equal(t, "Suite", text.Resolve([]string{"en-US", "en-GB"}, "Unnamed"))
}

func TestLocalizedText_ResolvePreferenceOrder(t *testing.T) {
	text := LocalizedMap(map[string]string{
		"en-GB": "Lift",
		"fr-FR": "Ascenseur",
	})
	assert.Equal(t, "Lift", text.Resolve([]string{"en-US", "en-GB"}, "Unnamed"))
}

func TestLocalizedText_ResolveFirstEntryWhenNoPreferenceMatches(t *testing.T) {
	text := LocalizedMap(map[string]string{
		"fr-FR": "Chambre",
		"de-DE": "Zimmer",
	})
	// deterministic: first entry by sorted locale code
	assert.Equal(t, "Zimmer", text.Resolve([]string{"en-US", "en-GB"}, "Unnamed"))
}

func TestLocalizedText_ResolveEmptyMapFallsBack(t *testing.T) {
	text := LocalizedMap(map[string]string{})
	assert.Equal(t, "Unnamed", text.Resolve([]string{"en-US", "en-GB"}, "Unnamed"))
}

func TestLocalizedText_EmptyValuesNeverWin(t *testing.T) {
	text := LocalizedMap(map[string]string{
		"en-US": "",
		"fr-FR": "Suite Deluxe",
	})
	assert.Equal(t, "Suite Deluxe", text.Resolve([]string{"en-US"}, "Unnamed"))

	assert.Equal(t, "Unnamed", PlainText("").Resolve([]string{"en-US"}, "Unnamed"))
}

func TestLocalizedText_UnmarshalString(t *testing.T) {
	var text LocalizedText
	err := json.Unmarshal([]byte(`"Standard Rate"`), &text)

	assert.NoError(t, err)
	assert.Equal(t, "Standard Rate", text.Resolve(nil, ""))
}

func TestLocalizedText_UnmarshalMap(t *testing.T) {
	var text LocalizedText
	err := json.Unmarshal([]byte(`{"en-US":"Suite","fr-FR":"Suite Deluxe"}`), &text)

	assert.NoError(t, err)
	assert.Equal(t, "Suite", text.Resolve([]string{"en-US"}, ""))
}

func TestLocalizedText_UnmarshalNullResolvesToFallback(t *testing.T) {
	var text LocalizedText
	err := json.Unmarshal([]byte(`null`), &text)

	assert.NoError(t, err)
	assert.Equal(t, "Unnamed", text.Resolve([]string{"en-US"}, "Unnamed"))
}
