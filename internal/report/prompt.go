// ABOUTME: Builds the weekly report brief sent to the text-generation provider.
// ABOUTME: Embeds profile, logged days, and metrics, plus the required HTML structure.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/wellness/internal/models"
)

// Fallback values for missing data in the brief.
const (
	NotSpecified = "No especificado"
	NotRecorded  = "No registrado"
)

// Section ids the generated report must use.
const (
	SectionProfileNudge    = "completa-tu-perfil"
	SectionDailyAnalysis   = "analisis-diario"
	SectionRecommendations = "recomendaciones"
)

const briefIntro = `Eres un asesor de bienestar y nutrición. Con los datos de esta semana, escribe un reporte semanal personalizado, cercano y motivador, en español.`

const structureHeader = `ESTRUCTURA OBLIGATORIA DEL REPORTE (responde solo con HTML, sin Markdown ni bloques de código):`

const structureTitle = `1. Un título en <h1>.
2. Una introducción motivadora en un <p>.
3. Una tabla <table> de dos columnas (Dato, Valor) con los datos del usuario: usa <thead> para el encabezado y una fila <tr> por dato en <tbody>.`

const structureNudge = `4. Como faltan datos del perfil, agrega <section id="` + SectionProfileNudge + `"> con un <p> breve invitando a completar el perfil para obtener recomendaciones más precisas.`

const structureAnalysis = `<section id="` + SectionDailyAnalysis + `"> con un <h2>Análisis diario</h2> y, por cada día listado en REGISTRO DIARIO (y solo esos días), un <h3> con el nombre del día seguido de un <p> que analice peso, comidas, estado de ánimo y nivel de actividad.`

const structureRecommendations = `<section id="` + SectionRecommendations + `"> con un <h2>Recomendaciones</h2>, un <p> con una visión integral de la semana y una lista <ul> con 2 o 3 acciones concretas en <li>.`

const structureRules = `REGLAS:
- No inventes días ni datos que no aparezcan arriba.
- No incluyas estilos, scripts ni etiquetas <html>, <head> o <body>.
- Cada sección debe cerrarse con </section>.`

// Input is everything the brief is built from.
type Input struct {
	Profile *models.UserProfile
	Week    models.WeeklyLog
	Metrics models.Metrics
}

// BuildPrompt assembles the full brief.
func BuildPrompt(in Input) string {
	var b strings.Builder

	b.WriteString(briefIntro)
	b.WriteString("\n\nDATOS DEL USUARIO\n")
	for _, row := range ProfileRows(in.Profile) {
		fmt.Fprintf(&b, "- %s: %s\n", row[0], row[1])
	}

	b.WriteString("\nREGISTRO DIARIO\n")
	lines := DayLines(in.Week)
	if len(lines) == 0 {
		b.WriteString("Sin registros diarios esta semana.\n")
	}
	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}

	b.WriteString("\nMÉTRICAS\n")
	for _, row := range MetricRows(in.Metrics) {
		fmt.Fprintf(&b, "- %s: %s\n", row[0], row[1])
	}

	b.WriteString("\n" + structureHeader + "\n")
	b.WriteString(structureTitle + "\n")
	n := 4
	if in.Profile == nil || !in.Profile.IsComplete() {
		b.WriteString(structureNudge + "\n")
		n++
	}
	fmt.Fprintf(&b, "%d. %s\n", n, structureAnalysis)
	fmt.Fprintf(&b, "%d. %s\n", n+1, structureRecommendations)
	b.WriteString("\n" + structureRules + "\n")

	return b.String()
}

// ProfileRows returns the label/value pairs describing a profile, with
// fallbacks for missing fields. A nil profile yields all fallbacks.
func ProfileRows(p *models.UserProfile) [][2]string {
	var prof models.UserProfile
	if p != nil {
		prof = *p
	}
	age := NotSpecified
	if prof.Age > 0 {
		age = fmt.Sprintf("%d años", prof.Age)
	}
	return [][2]string{
		{"Nombre", textOr(prof.Name, NotSpecified)},
		{"Edad", age},
		{"Objetivo", textOr(prof.Objective, NotSpecified)},
		{"Peso inicial", weightOr(prof.InitialWeight)},
		{"Meta de peso", weightOr(prof.WeightGoal)},
	}
}

// MetricRows returns the label/value pairs for the weekly metrics.
func MetricRows(m models.Metrics) [][2]string {
	return [][2]string{
		{"Fuerza", textOr(m.Strength, NotRecorded)},
		{"Medidas corporales", textOr(m.Measurements, NotRecorded)},
		{"IMC", textOr(m.BMI, NotRecorded)},
		{"Actividad diaria", textOr(m.DailyActivity, NotRecorded)},
	}
}

// DayLines returns one summary line per day that has a weight, a meal or
// a mood. Activity level is appended to included days but never causes
// a day to be included on its own.
func DayLines(week models.WeeklyLog) []string {
	var lines []string
	for i, day := range week {
		if !day.HasData() {
			continue
		}

		var parts []string
		if day.Weight > 0 {
			parts = append(parts, "Peso: "+FormatWeight(day.Weight))
		}
		if foods := foodParts(day.Food); len(foods) > 0 {
			parts = append(parts, "Comidas: "+strings.Join(foods, "; "))
		}
		if day.Mood != "" {
			parts = append(parts, "Estado de ánimo: "+day.Mood)
		}
		if day.ActivityLevel != "" {
			parts = append(parts, "Nivel de actividad: "+string(day.ActivityLevel))
		}

		lines = append(lines, models.DayNames[i]+": "+strings.Join(parts, " | "))
	}
	return lines
}

func foodParts(f models.DailyFoodLog) []string {
	slots := [][2]string{
		{"Desayuno", f.Breakfast},
		{"Almuerzo", f.Lunch},
		{"Merienda", f.Snack},
		{"Cena", f.Dinner},
		{"Otros", f.Other},
	}
	var parts []string
	for _, s := range slots {
		if s[1] != "" {
			parts = append(parts, s[0]+": "+s[1])
		}
	}
	return parts
}

// HasData reports whether anything worth reporting was logged this week.
func HasData(week models.WeeklyLog, metrics models.Metrics) bool {
	for _, day := range week {
		if day.HasData() {
			return true
		}
	}
	return !metrics.IsEmpty()
}

// FormatWeight renders a weight in kg without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + " kg"
}

func textOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func weightOr(w float64) string {
	if w <= 0 {
		return NotRecorded
	}
	return FormatWeight(w)
}
