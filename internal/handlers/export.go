package handlers

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// The export views render a whole collection at once: no filters, no
// pagination. They exist for manual data review and bulk download, not for
// client consumption.

var exportIndexTmpl = template.Must(template.New("exportIndex").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>EMOGO Export</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 600px; margin: 50px auto; padding: 20px; }
        a { display: block; padding: 10px 15px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; margin: 10px 0; }
        a:hover { background-color: #0056b3; }
    </style>
</head>
<body>
    <h1>EMOGO Data Export</h1>
    <p>Click on the links below to export data:</p>
    <ul>
        <li><a href="/export/vlog">Export Vlog</a></li>
        <li><a href="/export/sentiments">Export Sentiments</a></li>
        <li><a href="/export/gps">Export GPS Data</a></li>
    </ul>
</body>
</html>
`))

var exportVlogTmpl = template.Must(template.New("exportVlog").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Vlog Export</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        a { color: #007bff; }
        .header-buttons { margin: 20px 0; }
        .header-buttons a { margin-right: 10px; }
    </style>
</head>
<body>
    <h1>Vlog Data Export</h1>
    <p>Total Videos: {{.Total}}</p>
    <div class="header-buttons">
        <a href="/export" style="display: inline-block; padding: 8px 15px; background-color: #6c757d; color: white; text-decoration: none; border-radius: 5px;">&larr; Back to Export Page</a>
        <a href="/download-all" style="display: inline-block; padding: 8px 15px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px;">Download All Videos (ZIP)</a>
    </div>
    {{if .Items}}{{range .Items}}
    <div style="border: 1px solid #ddd; padding: 15px; margin: 10px 0; border-radius: 5px;">
        <p><strong>Mood Score:</strong> {{.MoodScore}}</p>
        <p><strong>Timestamp:</strong> {{.Timestamp}}</p>
        <p><strong>Created At:</strong> {{.CreatedAt}}</p>
        <video width="320" height="240" controls>
            <source src="{{.VideoURL}}" type="video/mp4">
            Your browser does not support the video tag.
        </video>
        <br>
        <a href="{{.DownloadURL}}" style="display: inline-block; margin-top: 10px; padding: 8px 15px; background-color: #28a745; color: white; text-decoration: none; border-radius: 5px;">Download Video</a>
    </div>
    {{end}}{{else}}<p>No vlogs available.</p>{{end}}
</body>
</html>
`))

var exportSentimentsTmpl = template.Must(template.New("exportSentiments").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Sentiments Export</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 900px; margin: 50px auto; padding: 20px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #007bff; color: white; }
        tr:nth-child(even) { background-color: #f2f2f2; }
    </style>
</head>
<body>
    <h1>Sentiments Data Export</h1>
    <p>Total Records: {{.Total}}</p>
    <a href="/export" style="display: inline-block; padding: 8px 15px; background-color: #6c757d; color: white; text-decoration: none; border-radius: 5px; margin-bottom: 20px;">&larr; Back to Export Page</a>
    <table>
        <thead>
            <tr>
                <th>Mood Score</th>
                <th>Timestamp</th>
                <th>Created At</th>
            </tr>
        </thead>
        <tbody>
            {{if .Items}}{{range .Items}}<tr>
                <td>{{.MoodScore}}</td>
                <td>{{.Timestamp}}</td>
                <td>{{.CreatedAt}}</td>
            </tr>
            {{end}}{{else}}<tr><td colspan="3">No sentiments data available.</td></tr>{{end}}
        </tbody>
    </table>
</body>
</html>
`))

var exportGpsTmpl = template.Must(template.New("exportGps").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>GPS Export</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 1000px; margin: 50px auto; padding: 20px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #28a745; color: white; }
        tr:nth-child(even) { background-color: #f2f2f2; }
    </style>
</head>
<body>
    <h1>GPS Data Export</h1>
    <p>Total Records: {{.Total}}</p>
    <a href="/export" style="display: inline-block; padding: 8px 15px; background-color: #6c757d; color: white; text-decoration: none; border-radius: 5px; margin-bottom: 20px;">&larr; Back to Export Page</a>
    <table>
        <thead>
            <tr>
                <th>Latitude</th>
                <th>Longitude</th>
                <th>Accuracy</th>
                <th>Timestamp</th>
                <th>Created At</th>
            </tr>
        </thead>
        <tbody>
            {{if .Items}}{{range .Items}}<tr>
                <td>{{.Latitude}}</td>
                <td>{{.Longitude}}</td>
                <td>{{.Accuracy}}</td>
                <td>{{.Timestamp}}</td>
                <td>{{.CreatedAt}}</td>
            </tr>
            {{end}}{{else}}<tr><td colspan="5">No GPS data available.</td></tr>{{end}}
        </tbody>
    </table>
</body>
</html>
`))

type vlogView struct {
	MoodScore   int
	Timestamp   int64
	CreatedAt   string
	VideoURL    string
	DownloadURL string
}

type sentimentView struct {
	MoodScore int
	Timestamp int64
	CreatedAt string
}

type gpsView struct {
	Latitude  float64
	Longitude float64
	Accuracy  string
	Timestamp int64
	CreatedAt string
}

type exportPage[T any] struct {
	Total int
	Items []T
}

func (h *Handler) ExportIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	exportIndexTmpl.Execute(w, nil)
}

func (h *Handler) ExportVlog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := h.Store.ListVlogEntries(ctx)
	if err != nil {
		http.Error(w, "Failed to load vlog data", http.StatusInternalServerError)
		return
	}

	items := make([]vlogView, 0, len(entries))
	for _, entry := range entries {
		view := vlogView{
			MoodScore:   entry.MoodScore,
			Timestamp:   entry.Timestamp,
			CreatedAt:   orNA(entry.CreatedAt),
			VideoURL:    orNA(entry.VideoURL),
			DownloadURL: "#",
		}
		// The per-item download link points at the forced-download route
		// for the URL's final path segment.
		if entry.VideoURL != "" {
			segments := strings.Split(entry.VideoURL, "/")
			if name := segments[len(segments)-1]; name != "" {
				view.DownloadURL = "/download/" + name
			}
		}
		items = append(items, view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	exportVlogTmpl.Execute(w, exportPage[vlogView]{Total: len(entries), Items: items})
}

func (h *Handler) ExportSentiments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := h.Store.ListSentimentEntries(ctx)
	if err != nil {
		http.Error(w, "Failed to load sentiments data", http.StatusInternalServerError)
		return
	}

	items := make([]sentimentView, 0, len(entries))
	for _, entry := range entries {
		items = append(items, sentimentView{
			MoodScore: entry.MoodScore,
			Timestamp: entry.Timestamp,
			CreatedAt: orNA(entry.CreatedAt),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	exportSentimentsTmpl.Execute(w, exportPage[sentimentView]{Total: len(entries), Items: items})
}

func (h *Handler) ExportGps(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := h.Store.ListGpsEntries(ctx)
	if err != nil {
		http.Error(w, "Failed to load GPS data", http.StatusInternalServerError)
		return
	}

	items := make([]gpsView, 0, len(entries))
	for _, entry := range entries {
		view := gpsView{
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
			Accuracy:  "N/A",
			Timestamp: entry.Timestamp,
			CreatedAt: orNA(entry.CreatedAt),
		}
		if entry.Accuracy != nil {
			view.Accuracy = strconv.FormatFloat(*entry.Accuracy, 'f', -1, 64)
		}
		items = append(items, view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	exportGpsTmpl.Execute(w, exportPage[gpsView]{Total: len(entries), Items: items})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
