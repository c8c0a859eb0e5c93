package handler

import (
	"log/slog"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the pixel width of generated QR codes.
const qrSize = 256

// ShareTrip handles GET /trips/{tripID}/share. The default response is a
// JSON body with the shareable URL; ?format=qr returns the same URL encoded
// as a PNG QR code.
func (s *Server) ShareTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	// Confirm the trip exists before handing out a link to it.
	if _, err := s.trips.GetByID(r.Context(), id); err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	link := s.trips.ShareLink(id)

	if r.URL.Query().Get("format") == "qr" {
		png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
		if err != nil {
			slog.Error("qr encode failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal", "internal server error")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(png)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		URL string `json:"url"`
	}{URL: link})
}
