package work

import (
	"bytes"
	"embed"
	"fmt"
	"hash/fnv"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Style is one of the fixed page layouts a daily work can be rendered with.
type Style struct {
	ID       string
	Name     string
	Template string // template file name under templates/
}

// Styles is the fixed layout table. Declaration order matters: the date hash
// indexes into it.
var Styles = []Style{
	{ID: "constellation", Name: "星座草稿", Template: "constellation.html"},
	{ID: "rain-window", Name: "雨窗", Template: "rain.html"},
	{ID: "bloom", Name: "生成花園", Template: "bloom.html"},
	{ID: "radio", Name: "深夜電台", Template: "radio.html"},
}

// PickStyle selects the layout for a date: an explicit override by id wins,
// otherwise the FNV-1a hash of the date picks one deterministically, so
// regenerating the same day always yields the same layout.
func PickStyle(date, override string) Style {
	if override != "" {
		for _, s := range Styles {
			if s.ID == override {
				return s
			}
		}
		return Styles[0]
	}

	h := fnv.New32a()
	h.Write([]byte(date))
	return Styles[h.Sum32()%uint32(len(Styles))]
}

// Renderer generates daily-work HTML pages. The body content is markdown,
// rendered with GFM and syntax highlighting.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer creates a page Renderer.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	tmpl := template.Must(template.New("work").ParseFS(content, "templates/*.html"))

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the data passed to every page template.
type pageData struct {
	Date    string
	Title   string
	Content template.HTML
}

// Render writes the page for one day to w using the given style.
func (r *Renderer) Render(w io.Writer, style Style, date, title, contentMD string) error {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(contentMD), &body); err != nil {
		return fmt.Errorf("render content: %w", err)
	}

	return r.tmpl.ExecuteTemplate(w, style.Template, pageData{
		Date:    date,
		Title:   title,
		Content: template.HTML(body.String()),
	})
}

// Excerpt derives the index excerpt: the first line of the content, capped
// at 60 runes.
func Excerpt(contentMD string) string {
	line, _, _ := strings.Cut(contentMD, "\n")
	runes := []rune(line)
	if len(runes) > 60 {
		return string(runes[:60])
	}
	return line
}
