package web

import (
	"html/template"
	"io"
	"strings"

	"pirots2ascii/render"
	"pirots2ascii/types"
)

const pageStyle = `
body { font-family: 'Courier New', monospace; margin: 20px; background-color: #f5f5f5; }
.container { max-width: 1200px; margin: 0 auto; background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
h1 { color: #333; text-align: center; margin-bottom: 30px; }
.upload-area { border: 2px dashed #ccc; border-radius: 8px; padding: 40px; text-align: center; margin-bottom: 30px; background-color: #fafafa; }
.btn { background-color: #007bff; color: white; padding: 10px 20px; border: none; border-radius: 4px; cursor: pointer; font-size: 16px; }
.back-btn { background-color: #6c757d; color: white; padding: 8px 16px; border-radius: 4px; text-decoration: none; display: inline-block; margin-bottom: 20px; }
.summary { background-color: #e9ecef; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
.board-container { margin: 20px 0; padding: 15px; background-color: #f8f9fa; border: 1px solid #dee2e6; border-radius: 5px; }
.board-title { font-weight: bold; color: #495057; margin-bottom: 10px; font-size: 16px; }
.badge { color: white; padding: 2px 6px; border-radius: 3px; font-size: 11px; margin-left: 10px; }
.board { background-color: #000; color: #00ff00; padding: 15px; border-radius: 4px; white-space: pre; overflow-x: auto; font-size: 14px; line-height: 1.2; }
.raw-data { font-size: 12px; color: #666; background-color: #f1f1f1; padding: 10px; border-radius: 4px; margin-top: 10px; word-break: break-all; }
summary { font-size: 12px; color: #007bff; cursor: pointer; margin-top: 5px; }
`

var uploadTemplate = template.Must(template.New("upload").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Pirots2ASCII - Game Board Visualization</title>
<style>{{.Style}}</style>
</head>
<body>
<div class="container">
  <h1>Pirots2ASCII - Game Board Visualization Tool</h1>
  <div class="upload-area">
    <h3>Upload XML File</h3>
    <p>Please select an XML file containing game data</p>
    <form action="/upload" method="post" enctype="multipart/form-data">
      <input type="file" name="xmlfile" accept=".xml" required style="margin: 10px;">
      <br>
      <button type="submit" class="btn">Parse and Display Game Board</button>
    </form>
  </div>
</div>
</body>
</html>
`))

var resultsTemplate = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Game Board Visualization Results</title>
<style>{{.Style}}</style>
</head>
<body>
<div class="container">
  <a href="/" class="back-btn">&larr; Back to Upload</a>
  <h1>Game Board Visualization Results</h1>
  <div class="summary">
    <h3>Parse Summary</h3>
    <p>Total <strong>{{len .Cards}}</strong> game states found</p>
    <p>File name: <strong>{{.FileName}}</strong></p>
  </div>
{{range .Cards}}
  <div class="board-container">
    <div class="board-title">{{.Title}} <span class="badge" style="background-color: {{.BadgeColor}};">{{.Badge}}</span></div>
    <div class="board">{{.Content}}</div>
    <details>
      <summary>Show/Hide Details</summary>
      <div class="raw-data">
        <strong>Data Type:</strong> {{.Badge}}<br>
        {{if .Mask}}<strong>Bit Mask:</strong> {{.Mask}}<br>{{end}}
        {{if .Highlights}}<strong>Highlight Positions:</strong> {{.Highlights}}<br>{{end}}
        {{if .PathCoords}}<strong>Path Coordinates:</strong> {{.PathCoords}}<br>{{end}}
        {{with .Step}}
        <strong>Step Information:</strong><br>
        &bull; Symbol: {{or .Symbol "N/A"}}<br>
        &bull; Current Position: {{or .Position "N/A"}}<br>
        &bull; Previous Position: {{or .PrevPos "N/A"}}<br>
        &bull; Win Amount: {{or .Win "0"}}<br>
        {{if .FirstStep}}&bull; First Step<br>{{end}}
        {{if .LastStep}}&bull; Last Step<br>{{end}}
        {{if .AngryBirds}}&bull; Angry Birds: {{.AngryBirds}}<br>{{end}}
        {{end}}
        <strong>Raw Data:</strong><br>
        {{.Raw}}
      </div>
    </details>
  </div>
{{end}}
</div>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<h1>Parse Error</h1>
<p>Unable to parse the uploaded XML file: {{.}}</p>
<a href="/">Back</a>
`))

// stateCard is the view of one game state on the results page.
type stateCard struct {
	Title      string
	Badge      string
	BadgeColor string
	Content    template.HTML
	Mask       string
	Highlights string
	PathCoords string
	Step       *types.StepAttributes
	Raw        string
}

func newCard(theme render.Theme, s types.GameState) stateCard {
	card := stateCard{
		Title: s.Heading(),
		Badge: strings.ToUpper(s.Kind()),
		Raw:   s.RawData(),
	}
	switch st := s.(type) {
	case *types.BoardState:
		card.BadgeColor = "#dc3545"
		// Markup mode escapes symbols and title itself.
		card.Content = template.HTML(theme.Board(st.Board, st.Title, st.Highlights, render.Markup))
		card.Mask = st.Mask
		var hl []string
		for _, p := range st.Highlights.Positions() {
			hl = append(hl, p.String())
		}
		card.Highlights = strings.Join(hl, ", ")
	case *types.PathState:
		card.BadgeColor = "#ff6b35"
		card.Content = template.HTML(template.HTMLEscapeString(st.Rendering))
		var coords []string
		for _, p := range st.Points {
			coords = append(coords, p.String())
		}
		card.PathCoords = strings.Join(coords, " → ")
		step := st.Step
		card.Step = &step
	}
	return card
}

// WriteResults writes the results page for the states of one replay.
func WriteResults(w io.Writer, theme render.Theme, fileName string, states []types.GameState) error {
	cards := make([]stateCard, 0, len(states))
	for _, s := range states {
		cards = append(cards, newCard(theme, s))
	}
	return resultsTemplate.Execute(w, struct {
		Style    template.CSS
		FileName string
		Cards    []stateCard
	}{template.CSS(pageStyle), fileName, cards})
}

func writeUploadForm(w io.Writer) error {
	return uploadTemplate.Execute(w, struct{ Style template.CSS }{template.CSS(pageStyle)})
}
