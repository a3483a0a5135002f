package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/difakses/difakses-go/model"
)

func TestRenderJSONWithQuery(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Title: "Kelas Bahasa Isyarat", Mode: model.EventModeOnline, Status: model.EventStatusPublished},
		{ID: "e2", Title: "Terapi Wicara", Mode: model.EventModeOffline, Status: model.EventStatusPublished},
	}

	var buf bytes.Buffer
	err := renderJSON(&buf, events, "[].title")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Kelas Bahasa Isyarat")
	require.Contains(t, out, "Terapi Wicara")
	require.NotContains(t, out, "e1")
}

func TestRenderJSONQueriesWireNames(t *testing.T) {
	community := model.Community{ID: "c1", Name: "Tuli Berdaya", IsPrivate: true}

	var buf bytes.Buffer
	// The expression addresses JSON field names, not Go identifiers.
	err := renderJSON(&buf, community, "is_private")
	require.NoError(t, err)
	require.Equal(t, "true\n", buf.String())
}

func TestValidateQuery(t *testing.T) {
	require.NoError(t, validateQuery(""))
	require.NoError(t, validateQuery("[].title"))
	require.Error(t, validateQuery("[[invalid"))
}

func TestParseEventFlagsRejectsBadMode(t *testing.T) {
	_, err := parseEventFlags([]string{"-mode", "teleport"})
	require.Error(t, err)
}

func TestParseTTSFlags(t *testing.T) {
	opts, err := parseTTSFlags([]string{"-text", "selamat datang", "-service", "VISION"})
	require.NoError(t, err)
	require.Equal(t, "vision", opts.Service)
	require.Equal(t, "speech.mp3", opts.Out)

	_, err = parseTTSFlags([]string{"-service", "isyarat"})
	require.Error(t, err) // missing --text
}

func TestParseLoginFlagsRequiresEmail(t *testing.T) {
	_, err := parseLoginFlags(nil)
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "a long ...", truncate("a long string that keeps going", 10))
}
