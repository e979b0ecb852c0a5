package html

import (
	"html/template"
	"time"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatTime": formatTime,
		"formatDate": formatDate,
		"plural":     plural,
	}
}

func formatTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

func formatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
