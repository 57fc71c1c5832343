// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webui

import (
	"html/template"
	"io"
)

// pageData carries the submitted field values back into the form so the
// user does not retype them, plus the result or error line.
type pageData struct {
	VO2Max  string
	Gender  string
	Age     string
	Message string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>5K Time Predictor</title></head>
<body>
<h1>5K Time Predictor</h1>
<form method="post" action="/predict">
  <label>VO2 max: <input type="text" name="vo2max" value="{{.VO2Max}}"></label><br>
  <label>Gender: <input type="text" name="gender" value="{{.Gender}}"></label><br>
  <label>Age: <input type="text" name="age" value="{{.Age}}"></label><br>
  <button type="submit">Predict</button>
</form>
{{if .Message}}<p id="result">{{.Message}}</p>{{end}}
</body>
</html>
`))

func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}
