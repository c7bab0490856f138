// ABOUTME: Tests for report section extraction.
// ABOUTME: Covers fenced output cleanup and section lookup by id.
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `<h1>Tu semana</h1>
<p>¡Buen trabajo!</p>
<section id="analisis-diario"><h2>Análisis diario</h2><h3>Jueves</h3><p>Peso estable.</p></section>
<section id="recomendaciones"><h2>Recomendaciones</h2><ul><li>Dormir más</li><li>Caminar</li></ul></section>`

func TestClean(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "  <h1>Hola</h1>\n", "<h1>Hola</h1>"},
		{"html fence", "```html\n<h1>Hola</h1>\n```", "<h1>Hola</h1>"},
		{"bare fence", "```\n<p>x</p>\n```", "<p>x</p>"},
		{"inner backticks kept", "<p>use `code`</p>", "<p>use `code`</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestSectionLocatesBlocks(t *testing.T) {
	days, ok := Section(sampleReport, SectionDailyAnalysis)
	require.True(t, ok)
	assert.Contains(t, days, "Jueves")
	assert.NotContains(t, days, "Dormir")

	recs, ok := Section(sampleReport, SectionRecommendations)
	require.True(t, ok)
	assert.Contains(t, recs, "<li>Dormir más</li>")
	assert.NotContains(t, recs, "Jueves")
}

func TestSectionMissing(t *testing.T) {
	_, ok := Section(sampleReport, SectionProfileNudge)
	assert.False(t, ok)
}
