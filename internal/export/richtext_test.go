// ABOUTME: Tests for parsing report HTML into layout blocks.
// ABOUTME: Covers headings, lists, tables and loose text.
package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRichTextBlocks(t *testing.T) {
	content := `<h2 id="analisis-diario">Análisis   diario</h2>
<p>Buen <strong>trabajo</strong> esta semana.</p>
<ul><li>Bebe agua</li><li>Camina</li></ul>
<ol><li>Uno</li><li>Dos</li></ol>
<h5>Nota</h5>`

	blocks, err := ParseRichText(content)
	require.NoError(t, err)

	assert.Equal(t, []Block{
		{Kind: BlockHeading, Level: 2, Text: "Análisis diario"},
		{Kind: BlockParagraph, Text: "Buen trabajo esta semana."},
		{Kind: BlockListItem, Text: "Bebe agua", Marker: "•"},
		{Kind: BlockListItem, Text: "Camina", Marker: "•"},
		{Kind: BlockListItem, Text: "Uno", Marker: "1."},
		{Kind: BlockListItem, Text: "Dos", Marker: "2."},
		{Kind: BlockHeading, Level: 3, Text: "Nota"},
	}, blocks)
}

func TestParseRichTextTable(t *testing.T) {
	content := `<table>
<thead><tr><th>Día</th><th>Peso</th></tr></thead>
<tbody><tr><td>Lunes</td><td>70 kg</td></tr><tr><td>Martes</td><td>69.5 kg</td></tr></tbody>
</table>`

	blocks, err := ParseRichText(content)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockTable, blocks[0].Kind)
	assert.Equal(t, []string{"Día", "Peso"}, blocks[0].Header)
	assert.Equal(t, [][]string{{"Lunes", "70 kg"}, {"Martes", "69.5 kg"}}, blocks[0].Rows)
}

func TestParseRichTextLooseTextAndBreaks(t *testing.T) {
	blocks, err := ParseRichText("Hola<br>mundo<div><p>dentro</p></div>fuera")
	require.NoError(t, err)
	assert.Equal(t, []Block{
		{Kind: BlockParagraph, Text: "Hola\nmundo"},
		{Kind: BlockParagraph, Text: "dentro"},
		{Kind: BlockParagraph, Text: "fuera"},
	}, blocks)
}

func TestParseRichTextEmpty(t *testing.T) {
	blocks, err := ParseRichText("   ")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
