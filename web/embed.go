// Package web embeds the static client assets: the embed bootstrap script
// that third-party pages load via a script tag, and the hosted widget page
// that lives inside the iframe the script creates.
package web

import (
	"embed"
	"net/http"
	"strings"
)

//go:embed static
var staticFS embed.FS

// originPlaceholder is replaced in script.js with the configured hosted
// origin, so one build serves any deployment.
const originPlaceholder = "__HOSTED_ORIGIN__"

// ScriptHandler serves the embed bootstrap script with the hosted origin
// substituted. The script's contract with already-deployed embeds: the tenant
// id rides in the script tag's own id attribute, and the iframe address is
// <hosted-origin>/<id>.
func ScriptHandler(hostedOrigin string) http.Handler {
	raw, err := staticFS.ReadFile("static/script.js")
	if err != nil {
		panic("web: embedded script.js missing: " + err.Error())
	}
	script := []byte(strings.ReplaceAll(string(raw), originPlaceholder, hostedOrigin))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(script)
	})
}

// WidgetHandler serves the hosted chat page addressed as /<chatbot-id>. The
// page reads the id from its own path and drives the relay and info
// endpoints; all conversation state lives in the page.
func WidgetHandler() http.Handler {
	page, err := staticFS.ReadFile("static/widget.html")
	if err != nil {
		panic("web: embedded widget.html missing: " + err.Error())
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
}
