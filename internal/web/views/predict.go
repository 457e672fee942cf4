package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"predictive-disease-detection/internal/predict"
)

// PredictionView is the state of one disease page.
type PredictionView struct {
	Kind   predict.Kind
	Values map[string]string
	// Banner is the result summary; empty until a prediction succeeds.
	Banner     string
	Positive   bool
	CanReport  bool
	ShowReport bool
	Report     []predict.ReportRow
}

// PredictionPage renders the disease form, result and optional report.
func PredictionPage(v PredictionView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		slug := v.Kind.Slug()
		h.raw(`<h1>`)
		h.text(v.Kind.Title())
		h.raw(`</h1><form method="post" action="/predict/`, attr(slug), `"><div class="grid">`)
		input(h, "Patient Name", predict.PatientNameKey, "text", v.Values[predict.PatientNameKey])
		for _, f := range predict.Schema(v.Kind) {
			h.raw(`<label>`)
			h.text(f.Label)
			step := "any"
			if f.Integer {
				step = "1"
			}
			h.raw(`<input type="number" step="`, step, `" name="`, attr(f.Key), `"`)
			if f.NonNegative {
				h.raw(` min="0"`)
			}
			if val := v.Values[f.Key]; val != "" {
				h.raw(` value="`, attr(val), `"`)
			}
			h.raw(`></label>`)
		}
		h.raw(`</div><button type="submit">`)
		h.text(v.Kind.SubmitLabel())
		h.raw(`</button></form>`)

		if v.Banner != "" {
			class := "flash flash-success"
			if v.Positive {
				class = "flash flash-info"
			}
			h.raw(`<div class="`, class, `" id="result">`)
			h.text(v.Banner)
			h.raw(`</div>`)
		}
		if v.CanReport {
			label := "Show Report"
			if v.ShowReport {
				label = "Hide Report"
			}
			h.raw(`<form method="post" action="/predict/`, attr(slug), `/report"><button type="submit">`, label, `</button></form>`)
		}
		if v.ShowReport {
			h.render(ctx, ReportTable(v.Report))
		}
		return h.err
	})
}

// ReportTable lists each entered value beside its reference range.
func ReportTable(rows []predict.ReportRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<table class="report"><thead><tr><th>Parameter</th><th>Value</th><th>Normal Range</th><th>Unit</th></tr></thead><tbody>`)
		for _, r := range rows {
			h.raw(`<tr><td>`)
			h.text(r.Parameter)
			h.raw(`</td><td>`)
			h.text(r.Value)
			h.raw(`</td><td>`)
			h.text(r.NormalRange)
			h.raw(`</td><td>`)
			h.text(r.Unit)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}
