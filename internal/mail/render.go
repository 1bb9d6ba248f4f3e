package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Message is a rendered email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Render expects templates/<name>.subject.tmpl, .text.tmpl and .html.tmpl.
func Render(name string, data map[string]any) (Message, error) {
	subject, err := renderText(name+".subject.tmpl", data)
	if err != nil {
		return Message{}, err
	}
	text, err := renderText(name+".text.tmpl", data)
	if err != nil {
		return Message{}, err
	}
	html, err := renderHTML(name+".html.tmpl", data)
	if err != nil {
		return Message{}, err
	}
	return Message{Subject: strings.TrimSpace(subject), Text: text, HTML: html}, nil
}

func renderText(file string, data any) (string, error) {
	tpl, err := texttpl.New(file).Option("missingkey=zero").ParseFS(templateFS, "templates/"+file)
	if err != nil {
		return "", fmt.Errorf("parse text %q: %w", file, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", file, err)
	}
	return buf.String(), nil
}

func renderHTML(file string, data any) (string, error) {
	tpl, err := htmpl.New(file).Option("missingkey=zero").ParseFS(templateFS, "templates/"+file)
	if err != nil {
		return "", fmt.Errorf("parse html %q: %w", file, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", file, err)
	}
	return buf.String(), nil
}
