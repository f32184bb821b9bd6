package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/churchconnect/edge/pkg/sanitizer"
	"github.com/churchconnect/edge/pkg/tenant"
)

const defaultPrimaryColor = "#2563eb"

// page wraps body in the shared HTML document.
func page(title, accent string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		accent = sanitizer.Color(accent, defaultPrimaryColor)
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en-GB"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(title) + `</title>`)
		b.WriteString(`<style>:root{--accent:` + templ.EscapeString(accent) + `}</style>`)
		b.WriteString(`</head><body>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func html(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func landingPage() templ.Component {
	return page("ChurchConnect | Modern Church Management", "", html(
		`<header><strong>ChurchConnect</strong><nav>`+
			`<a href="#features">Features</a> <a href="/auth/login">Sign In</a> `+
			`<a href="/register-church">Get Started</a></nav></header>`+
			`<main><section><h1>Modern Church Management</h1>`+
			`<p>Streamline your church operations with a parishioner management system built for UK churches.</p>`+
			`<a href="/register-church">Start Your Free Trial</a></section>`+
			`<section id="features"><h2>Everything Your Church Needs</h2><ul>`+
			`<li><h3>Member Management</h3><p>Families, contact details and ministry involvement in one place.</p></li>`+
			`<li><h3>Secure &amp; Private</h3><p>Role-based access control keeps congregation data private.</p></li>`+
			`<li><h3>Custom Church Portal</h3><p>Each church gets its own branded subdomain.</p></li>`+
			`</ul></section></main>`+
			`<footer><p>Email: support@churchconnect.uk</p></footer>`,
	))
}

func registerPage(exampleURL string) templ.Component {
	return page("Register your church | ChurchConnect", "", html(
		`<main><h1>Register your church</h1>`+
			`<p>Your church portal will live at <code>`+templ.EscapeString(exampleURL)+`</code>.</p>`+
			`<form method="get" action="/register-church">`+
			`<label>Church name <input name="name" required></label>`+
			`<label>Email <input name="email" type="email" required></label>`+
			`<button type="submit">Continue</button></form></main>`,
	))
}

func loginPage() templ.Component {
	return page("Sign in | ChurchConnect", "", html(
		`<main><h1>Sign in</h1><form method="get" action="/auth/login">`+
			`<label>Email <input name="email" type="email" required></label>`+
			`<label>Password <input name="password" type="password" required></label>`+
			`<button type="submit">Sign in</button></form></main>`,
	))
}

// tenantPage renders church-branded content for path (relative to the
// tenant scope).
func tenantPage(t *tenant.Tenant, path string) templ.Component {
	var b strings.Builder
	b.WriteString(`<header>`)
	if t.LogoURL != "" {
		b.WriteString(`<img src="` + templ.EscapeString(t.LogoURL) + `" alt="" height="48">`)
	}
	b.WriteString(`<h1>` + templ.EscapeString(t.Name) + `</h1></header><main>`)
	if t.Description != "" {
		b.WriteString(`<div class="description">` + sanitizer.RichText(t.Description) + `</div>`)
	}
	if path != "/" {
		b.WriteString(`<p class="path">` + templ.EscapeString(path) + `</p>`)
	}
	b.WriteString(`<dl>`)
	if t.Address != "" {
		b.WriteString(`<dt>Address</dt><dd>` + templ.EscapeString(t.Address) + `</dd>`)
	}
	if t.Phone != "" {
		b.WriteString(`<dt>Phone</dt><dd>` + templ.EscapeString(formatPhone(t.Phone)) + `</dd>`)
	}
	if t.Email != "" {
		b.WriteString(`<dt>Email</dt><dd>` + templ.EscapeString(t.Email) + `</dd>`)
	}
	if !t.CreatedAt.IsZero() {
		b.WriteString(`<dt>Member since</dt><dd>` + formatDate(t.CreatedAt) + `</dd>`)
	}
	b.WriteString(`</dl></main>`)

	return page(t.Name+" | ChurchConnect", t.PrimaryColor, html(b.String()))
}
