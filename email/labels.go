package email

// Locale selects the language of the report labels.
type Locale string

// Supported locales ...
const (
	LocaleSpanish Locale = "es"
	LocaleEnglish Locale = "en"
)

// DefaultLocale ...
const DefaultLocale = LocaleSpanish

// Labels are the fixed texts of the report.
type Labels struct {
	Title        string
	Total        string
	Passed       string
	Failed       string
	Skipped      string
	CallToAction string
	Failures     string
	Of           string
	Duration     string
	Footer       string
}

var labelsByLocale = map[Locale]Labels{
	LocaleSpanish: {
		Title:        "Resultados Playwright",
		Total:        "Total",
		Passed:       "Pasados",
		Failed:       "Fallados",
		Skipped:      "Omitidos",
		CallToAction: "Ver run y descargar reporte",
		Failures:     "Fallos",
		Of:           "de",
		Duration:     "Duración",
		Footer:       "Reporte generado automáticamente. Enlace al run:",
	},
	LocaleEnglish: {
		Title:        "Playwright results",
		Total:        "Total",
		Passed:       "Passed",
		Failed:       "Failed",
		Skipped:      "Skipped",
		CallToAction: "Open the run and download the report",
		Failures:     "Failures",
		Of:           "of",
		Duration:     "Duration",
		Footer:       "Report generated automatically. Link to the run:",
	},
}

// LabelsFor returns the labels of the locale, falling back to the default locale.
func LabelsFor(locale Locale) Labels {
	if labels, ok := labelsByLocale[locale]; ok {
		return labels
	}
	return labelsByLocale[DefaultLocale]
}
