package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("fr", "FR")
	require.NoError(t, err)
	assert.Equal(t, "fr", l.Language)
	assert.Equal(t, "FR", l.Region)

	l, err = New("en", "")
	require.NoError(t, err)
	assert.Equal(t, "", l.Region)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		lang    string
		region  string
		wantErr error
	}{
		{"upper-case language", "FR", "", ErrInvalidLanguage},
		{"too long", "fren", "", ErrInvalidLanguage},
		{"too short", "f", "", ErrInvalidLanguage},
		{"digits", "f1", "", ErrInvalidLanguage},
		{"lower-case region", "fr", "fr", ErrInvalidRegion},
		{"long region", "fr", "FRA", ErrInvalidRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.lang, tt.region)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestIsLanguageCode(t *testing.T) {
	assert.True(t, IsLanguageCode("en"))
	assert.True(t, IsLanguageCode("ar"))
	assert.True(t, IsLanguageCode("fil"))
	assert.False(t, IsLanguageCode("notareal"))
	assert.False(t, IsLanguageCode(""))
	assert.False(t, IsLanguageCode("En"))
}

func TestParseRegionQualifier(t *testing.T) {
	region, ok := ParseRegionQualifier("rFR")
	assert.True(t, ok)
	assert.Equal(t, "FR", region)

	for _, tok := range []string{"rfr", "FR", "rFRA", "r", "xFR", "round"} {
		_, ok := ParseRegionQualifier(tok)
		assert.False(t, ok, tok)
	}
}

func TestLocale_Forms(t *testing.T) {
	l := Locale{Language: "fr", Region: "FR"}
	assert.Equal(t, "fr-rFR", l.Qualifier())
	assert.Equal(t, "fr_FR", l.String())
	assert.Equal(t, "fr-FR", l.Tag().String())

	l = Locale{Language: "de"}
	assert.Equal(t, "de", l.Qualifier())
	assert.Equal(t, "de", l.String())
}

func TestLocale_IsRTL(t *testing.T) {
	tests := []struct {
		lang   string
		region string
		want   bool
	}{
		{"ar", "", true},
		{"ar", "EG", true},
		{"he", "IL", true},
		{"fa", "", true},
		{"ur", "PK", true},
		{"fr", "FR", false},
		{"en", "US", false},
		{"ja", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"_"+tt.region, func(t *testing.T) {
			l := Locale{Language: tt.lang, Region: tt.region}
			assert.Equal(t, tt.want, l.IsRTL())
		})
	}
}
