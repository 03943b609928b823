package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

// FakeESPNServer serves canned ESPN fantasy v3 API responses. League 111111
// has the test user's team at home, league 222222 has it away with the same
// team name, league 333333 requires the espn_s2 cookie.
type FakeESPNServer struct {
	s *httptest.Server
}

func NewFakeESPNServer() *FakeESPNServer {
	r := chi.NewRouter()
	r.Route("/apis/v3/games/ffl/seasons/{year}", func(r chi.Router) {
		r.Get("/", proSchedulesHandler)
		r.Get("/segments/0/leagues/{leagueID}", leagueHandler)
	})

	return &FakeESPNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

func proSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "year") != "2024" {
		http.NotFound(w, r)
		return
	}
	serveFile(w, "pro_schedules.json")
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "year") != "2024" {
		http.NotFound(w, r)
		return
	}

	switch chi.URLParam(r, "leagueID") {
	case "111111":
		serveFile(w, "league_home.json")
	case "222222":
		serveFile(w, "league_away.json")
	case "333333":
		// Private league: the real API answers 401 without valid cookies.
		if c, err := r.Cookie("espn_s2"); err != nil || c.Value == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		serveFile(w, "league_home.json")
	default:
		http.NotFound(w, r)
	}
}

func serveFile(w http.ResponseWriter, name string) {
	data, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		log.Printf("error reading file %s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
