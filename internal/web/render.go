package web

import "html/template"

// pageData drives the editor page template.
type pageData struct {
	Title    string
	Kind     string
	Fields   []fieldView
	Valid    bool
	Checked  bool // a validation run happened
	Message  string
	Path     string
	Warnings []string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 2rem auto; max-width: 46rem; color: #222; }
  label { display: block; margin-top: 0.8rem; font-weight: 600; }
  input, select { width: 100%; padding: 0.35rem; box-sizing: border-box; }
  fieldset { margin-top: 1rem; border: 1px solid #bbb; }
  legend { font-weight: 600; }
  .required::after { content: " *"; color: #b00; }
  .result-ok { color: #0a0; font-weight: 600; margin-top: 1rem; }
  .result-fail { color: #b00; font-weight: 600; margin-top: 1rem; }
  .warning { color: #a60; }
  .actions { margin-top: 1.5rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Checked}}
  {{if .Valid}}
    <p class="result-ok">Contract is valid according to the schema.</p>
  {{else}}
    <p class="result-fail">Validation error: {{.Message}}{{if .Path}} (at {{.Path}}){{end}}</p>
  {{end}}
{{end}}
{{range .Warnings}}<p class="warning">{{.}}</p>{{end}}
<form method="post" action="/contract">
  <input type="hidden" name="kind" value="{{.Kind}}">
  {{range .Fields}}{{template "field" .}}{{end}}
  <div class="actions">
    <button type="submit" name="action" value="validate">Validate</button>
    <button type="submit" name="action" value="download">Download JSON</button>
  </div>
</form>
</body>
</html>

{{define "field"}}
{{if eq .Type "object"}}
<fieldset>
  <legend>{{.Label}}</legend>
  {{range .Nested}}{{template "field" .}}{{end}}
</fieldset>
{{else if .Enum}}
<label {{if .Required}}class="required"{{end}} for="{{.InputName}}">{{.Label}}</label>
<select id="{{.InputName}}" name="{{.InputName}}">
  <option value=""></option>
  {{$value := .Value}}
  {{range .Enum}}<option value="{{.}}" {{if eq . $value}}selected{{end}}>{{.}}</option>{{end}}
</select>
{{else if eq .Type "boolean"}}
<label {{if .Required}}class="required"{{end}} for="{{.InputName}}">{{.Label}}</label>
<select id="{{.InputName}}" name="{{.InputName}}">
  <option value=""></option>
  <option value="true" {{if eq .Value "true"}}selected{{end}}>true</option>
  <option value="false" {{if eq .Value "false"}}selected{{end}}>false</option>
</select>
{{else if eq .Type "array"}}
<label {{if .Required}}class="required"{{end}} for="{{.InputName}}">{{.Label}} (comma-separated)</label>
<input id="{{.InputName}}" name="{{.InputName}}" type="text" value="{{.Value}}">
{{else if or (eq .Type "number") (eq .Type "integer")}}
<label {{if .Required}}class="required"{{end}} for="{{.InputName}}">{{.Label}}</label>
<input id="{{.InputName}}" name="{{.InputName}}" type="number" {{if eq .Type "number"}}step="any"{{end}} value="{{.Value}}">
{{else}}
<label {{if .Required}}class="required"{{end}} for="{{.InputName}}">{{.Label}}</label>
<input id="{{.InputName}}" name="{{.InputName}}" type="text" value="{{.Value}}">
{{end}}
{{end}}`))
