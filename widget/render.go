package widget

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const loadFailedMessage = "Failed to load data. Please try again later."

var viewTemplate = template.Must(template.New("widget").Parse(`
{{- define "container" -}}
background-color: {{.Background}}; color: {{.Text}}; padding: {{.Padding}}px; width: {{if .Responsive}}100%{{else}}auto{{end}}
{{- end -}}
{{- if eq .State "loading" -}}
<div class="crypto-widget crypto-widget--loading" style="{{template "container" .}}"></div>
{{- else if eq .State "error" -}}
<div class="crypto-widget crypto-widget--error" style="{{template "container" .}}"><p>{{.Message}}</p></div>
{{- else -}}
<div class="crypto-widget" style="{{template "container" .}}">
  <div class="crypto-widget__coin">
    <img src="{{.Data.Image}}" alt="{{.Data.Name}}" width="32" height="32">
    <h2>{{.Data.Name}}</h2>
    <p>{{.Symbol}}</p>
  </div>
  <div class="crypto-widget__price">
    <p>{{.Price}}</p>
    <span style="color: {{.ChangeColor}}">{{.ChangeArrow}} 24h: {{.Change}}</span>
  </div>
  <div class="crypto-widget__stat"><p>Market Cap</p><p style="color: {{.Accent}}">{{.MarketCap}}</p></div>
  <div class="crypto-widget__stat"><p>Volume 24h</p><p style="color: {{.Accent}}">{{.Volume}}</p></div>
</div>
{{- end -}}
`))

// renderModel is the view with every figure already formatted
type renderModel struct {
	View
	Background  template.CSS
	Text        template.CSS
	Accent      template.CSS
	State       string
	Message     string
	Symbol      string
	Price       string
	Change      string
	ChangeColor string
	ChangeArrow string
	MarketCap   string
	Volume      string
}

func newRenderModel(v View) renderModel {
	model := renderModel{
		View:       v,
		Background: cssColor(v.Styles.Background, DefaultBackgroundColor),
		Text:       cssColor(v.Styles.Text, defaultTextColor),
		Accent:     cssColor(v.Styles.Accent, DefaultAccentColor),
		State:      v.State.String(),
	}

	if v.State == StateError || (v.State == StateReady && v.Data == nil) {
		model.State = StateError.String()
		model.Message = v.Error
		if model.Message == "" {
			model.Message = loadFailedMessage
		}
		return model
	}

	if v.Data != nil {
		change, positive := FormatChange(v.Data.PriceChangePercentage24h)
		model.Symbol = strings.ToUpper(v.Data.Symbol)
		model.Price = FormatPrice(v.Data.CurrentPrice)
		model.Change = change
		model.MarketCap = FormatLargeNumber(v.Data.MarketCap)
		model.Volume = FormatLargeNumber(v.Data.TotalVolume)
		model.ChangeColor = negativeChangeColor
		model.ChangeArrow = "▼"
		if positive {
			model.ChangeColor = positiveChangeColor
			model.ChangeArrow = "▲"
		}
	}
	return model
}

// RenderHTML renders the view as an embeddable HTML fragment
func RenderHTML(v View) (string, error) {
	var buf bytes.Buffer
	if err := viewTemplate.Execute(&buf, newRenderModel(v)); err != nil {
		return "", fmt.Errorf("failed to render widget: %w", err)
	}
	return buf.String(), nil
}

// RenderText renders the view as one terminal line
func RenderText(v View) string {
	model := newRenderModel(v)

	switch model.State {
	case StateLoading.String():
		return fmt.Sprintf("Loading %s...", v.CoinID)
	case StateError.String():
		return "Error: " + model.Message
	}

	return fmt.Sprintf("%s (%s)  %s  %s 24h: %s  Market Cap %s  Volume 24h %s",
		v.Data.Name, model.Symbol, model.Price, model.ChangeArrow, model.Change, model.MarketCap, model.Volume)
}
