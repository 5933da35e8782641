package httpx

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"local.dev/lennysocial/internal/models"
)

var allowedExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".mp4": true, ".mov": true, ".avi": true,
}

var videoExts = map[string]bool{".mp4": true, ".mov": true, ".avi": true}

// mediaType infers image/video from a stored filename's extension.
func mediaType(fileURL string) models.FileType {
	if fileURL == "" {
		return models.FileTypeNone
	}
	if videoExts[strings.ToLower(filepath.Ext(fileURL))] {
		return models.FileTypeVideo
	}
	return models.FileTypeImage
}

// safeName keeps filenames to a conservative character set.
func safeName(base string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == '.' ||
			(r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return r
		}
		return '-'
	}, base)
}

// HandleUpload stores a post/chat attachment under a timestamped filename
// and answers with the URL and inferred media type. The post itself is
// created separately with the returned URL.
func HandleUpload(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 20<<20) // 20MB
		if err := r.ParseMultipartForm(25 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parse form: " + err.Error()})
			return
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "form file: " + err.Error()})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(hdr.Filename))
		if !allowedExts[ext] {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported file type: " + ext})
			return
		}

		base := safeName(strings.TrimSuffix(hdr.Filename, filepath.Ext(hdr.Filename)))
		if base == "" {
			base = "file"
		}
		filename := time.Now().Format("20060102T150405.000") + "_" + base + ext
		if err := writeUpload(filepath.Join(app.Paths.UploadsDir, filename), file); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"url":      "/uploads/" + filename,
			"fileType": string(mediaType(filename)),
		})
	}
}

func writeUpload(dst string, src io.Reader) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return err
}
