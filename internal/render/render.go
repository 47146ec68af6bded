package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/fedipeek/fedipeek/internal/domain"
)

// Renderer turns a lookup Result into the HTML fragment injected into
// the page's output region. It owns no output target: callers pass the
// writer, which keeps rendering testable without a live page.
type Renderer struct {
	tmpl *template.Template
}

// New parses the result templates. Panics on a bad template, which can
// only happen at build time.
func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("result").Parse(resultTemplates)),
	}
}

// onlineView flattens a reachable result for the template. All values
// pass through html/template's contextual escaping, so remote strings
// can never become live markup.
type onlineView struct {
	Host            string
	Description     string
	Version         string
	Maintainer      string
	MaintainerEmail string
	HasContact      bool
	ContactURL      string
	Icon            string
	Banner          string
	TOS             string
	Privacy         string
	MaxNoteLength   string
	Rules           []string
}

type offlineView struct {
	Host string
	Err  string
}

// Render writes the fragment for res to w.
func (r *Renderer) Render(w io.Writer, res *domain.Result) error {
	if res == nil {
		return fmt.Errorf("nil result")
	}

	if !res.Online {
		return r.tmpl.ExecuteTemplate(w, "offline", offlineView{
			Host: res.Host,
			Err:  res.Err,
		})
	}

	meta := res.Meta
	if meta == nil {
		meta = &domain.Metadata{}
	}

	// TODO: surface meta.Software() in the summary block. The alias
	// fallback (softwareName, then name) is computed in domain but the
	// original display never included it; kept off the page until the
	// intended placement is decided.
	view := onlineView{
		Host:            res.Host,
		Description:     meta.DisplayDescription(),
		Version:         meta.DisplayVersion(),
		Maintainer:      meta.DisplayMaintainer(),
		MaintainerEmail: meta.DisplayMaintainerEmail(),
		HasContact:      meta.ContactURL() != domain.NotAvailable,
		ContactURL:      meta.ContactURL(),
		Icon:            orNA(meta.IconURL),
		Banner:          orNA(meta.BannerURL),
		TOS:             orNA(meta.TOSURL),
		Privacy:         orNA(meta.PrivacyPolicyURL),
		MaxNoteLength:   maxNoteLength(meta.MaxNoteTextLength),
		Rules:           meta.ServerRules,
	}

	return r.tmpl.ExecuteTemplate(w, "online", view)
}

func orNA(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}

func maxNoteLength(n int) string {
	if n <= 0 {
		return domain.NotAvailable
	}
	return strconv.Itoa(n)
}

const resultTemplates = `
{{define "online"}}<div class="result online">
  <h2>{{.Host}}</h2>
  <p class="status">Status: <span class="ok">Online</span></p>
  <dl class="summary">
    <dt>Description</dt><dd>{{.Description}}</dd>
    <dt>Version</dt><dd>{{.Version}}</dd>
    <dt>Admin</dt><dd>{{.Maintainer}} ({{.MaintainerEmail}})</dd>
    <dt>Contact</dt><dd>{{if .HasContact}}<a href="{{.ContactURL}}" target="_blank" rel="noopener noreferrer">{{.ContactURL}}</a>{{else}}N/A{{end}}</dd>
  </dl>
  <dl class="details">
    <dt>Icon</dt><dd>{{.Icon}}</dd>
    <dt>Banner</dt><dd>{{.Banner}}</dd>
    <dt>Terms of service</dt><dd>{{.TOS}}</dd>
    <dt>Privacy policy</dt><dd>{{.Privacy}}</dd>
    <dt>Max note length</dt><dd>{{.MaxNoteLength}}</dd>
  </dl>
{{if .Rules}}  <h3>Server rules</h3>
  <ol class="rules">
{{range .Rules}}    <li>{{.}}</li>
{{end}}  </ol>
{{end}}</div>{{end}}
{{define "offline"}}<div class="result offline">
  <h2>{{.Host}}</h2>
  <p class="status">Status: <span class="err">Offline</span></p>
  <p class="error">{{.Err}}</p>
</div>{{end}}`
