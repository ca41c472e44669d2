package router

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

var sitemapTmpl = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>petcare-api</title></head>
<body>
<div style="text-align: center;">
<h1>petcare-api</h1>
<p>Endpoints disponibles:</p>
<ul style="display: inline-block; text-align: left;">
{{- range . }}
<li><a href="{{ . }}">{{ . }}</a></li>
{{- end }}
</ul>
<p><a href="/swagger/index.html">Swagger UI</a></p>
</div>
</body>
</html>
`))

// sitemapHandler lista las rutas GET sin parámetros.
func sitemapHandler(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := sitemapLinks(routes)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = sitemapTmpl.Execute(w, links)
	}
}

func sitemapLinks(routes chi.Routes) ([]string, error) {
	seen := map[string]struct{}{}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method != http.MethodGet {
			return nil
		}
		if strings.ContainsAny(route, "{*") {
			return nil
		}
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		if route == "/" {
			return nil
		}
		seen[route] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	links := make([]string, 0, len(seen))
	for l := range seen {
		links = append(links, l)
	}
	sort.Strings(links)
	return links, nil
}
