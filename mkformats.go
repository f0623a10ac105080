//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

var header = `// Code generated by mkformats.go; DO NOT EDIT.

package fixedpoint

import "github.com/calebcase/fixedpoint/storage"
`

var formatTemplate = `
// {{ .Name }} is the Q{{ .M }}.{{ .N }} format stored in {{ .Width }} bits.
type {{ .Name }} struct{}

func ({{ .Name }}) Format() Format { return Format{ {{- .M }}, {{ .N }}, storage.W{{ .Width }}} }
func ({{ .Name }}) q()             {}
{{- if .Wide }}
func ({{ .Name }}) wide()          {}
{{- end }}
`

var markersTemplate = `
// Markers holds one value of every marker type, ordered by width and then by
// N.
var Markers = []Q{
{{- range . }}
	{{ . }}{},
{{- end }}
}
`

type formatType struct {
	Name  string
	M, N  uint
	Width uint
	Wide  bool
}

func main() {
	log.Default().SetFlags(log.Lshortfile)

	tmpl, err := template.New("formatTemplate").Parse(formatTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	markers, err := template.New("markersTemplate").Parse(markersTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBufferString(header)
	names := []string{}

	for _, width := range []uint{8, 16, 32, 64} {
		for n := uint(0); n < width; n++ {
			m := width - 1 - n
			name := fmt.Sprintf("Q%d_%d", m, n)
			names = append(names, name)

			err = tmpl.Execute(source, formatType{
				Name:  name,
				M:     m,
				N:     n,
				Width: width,
				Wide:  width < 64,
			})
			if err != nil {
				log.Fatalln(err)
			}
		}
	}

	err = markers.Execute(source, names)
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}

	err = os.WriteFile("formats.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
