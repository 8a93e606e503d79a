package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"axscan/internal/model"
	"axscan/internal/scan"
)

//go:embed static/*
var staticFS embed.FS

// StartServer starts the web server for scans of root on port 8080.
func StartServer(root string) {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	srv := &server{root: root}

	// API Endpoints
	mux.HandleFunc("/api/scan", srv.handleScan)
	mux.HandleFunc("/api/file", srv.handleFile)
	mux.HandleFunc("/api/line-context", srv.handleLineContext)

	port := "8080"
	fmt.Printf("Starting axscan web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

type server struct {
	root string
}

// handleScan reruns the scan on every request so a page reload reflects
// edits made to the sources since the server started.
func (s *server) handleScan(w http.ResponseWriter, r *http.Request) {
	scanner := scan.NewScanner()
	result, err := scanner.Run(s.root)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	response := struct {
		model.ScanResult
		FilesAffected int    `json:"FilesAffected"`
		Report        string `json:"Report"`
		Version       string `json:"Version"`
	}{
		ScanResult:    result,
		FilesAffected: result.FilesAffected(),
		Report:        scan.GenerateReport(result),
		Version:       model.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// resolve maps a report-relative path back under the scan root, rejecting
// anything that escapes it.
func (s *server) resolve(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	relCheck, err := filepath.Rel(s.root, full)
	if err != nil || strings.HasPrefix(relCheck, "..") {
		return "", fmt.Errorf("path %s is outside the scan root", rel)
	}
	return full, nil
}

func (s *server) handleFile(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}

	full, err := s.resolve(path)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	content, err := os.ReadFile(full)
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write(content)
}

func (s *server) handleLineContext(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	lineNumStr := r.URL.Query().Get("line")
	if path == "" || lineNumStr == "" {
		http.Error(w, "path and line are required", 400)
		return
	}

	lineNum := 0
	_, err := fmt.Sscanf(lineNumStr, "%d", &lineNum)
	if err != nil {
		http.Error(w, "invalid line number", 400)
		return
	}

	full, err := s.resolve(path)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	context := model.GetLineContext(full, lineNum)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(context)
}
