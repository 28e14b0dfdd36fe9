package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// fakeAsset mirrors the subset of a Mux asset the relay clients read.
type fakeAsset struct {
	ID          string         `json:"id"`
	Status      string         `json:"status"`
	Duration    float64        `json:"duration"`
	Passthrough string         `json:"passthrough,omitempty"`
	CreatedAt   string         `json:"created_at"`
	PlaybackIDs []fakePlayback `json:"playback_ids,omitempty"`
}

type fakePlayback struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

var (
	addr       = flag.String("addr", ":8090", "listen address")
	count      = flag.Int("assets", 10, "number of assets to list")
	tokenID    = flag.String("token-id", "dev", "expected basic auth user")
	secret     = flag.String("token-secret", "dev", "expected basic auth password")
	keyed      = flag.Bool("passthrough", false, "tag assets with ep<N> passthrough keys")
	missingOne = flag.Bool("missing-playback", false, "leave the last asset without a playback id")
)

func main() {
	flag.Parse()

	assets := makeAssets(*count)

	http.HandleFunc("/video/v1/assets/", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Received request URL: %s", r.URL.String())

		user, pass, ok := r.BasicAuth()
		if !ok || user != *tokenID || pass != *secret {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"error": map[string]interface{}{"type": "unauthorized", "messages": []string{"Unauthorized request"}},
			})
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/video/v1/assets/")
		if id == "" {
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": assets})
			return
		}
		for _, a := range assets {
			if a.ID == id {
				writeJSON(w, http.StatusOK, map[string]interface{}{"data": a})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": map[string]interface{}{"type": "not_found", "messages": []string{"The requested asset does not exist"}},
		})
	})

	fmt.Printf("Fake Mux API starting on %s with %d assets\n", *addr, len(assets))
	fmt.Println("Point mux.base_url (or MUX_BASE_URL) at this server.")
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func makeAssets(n int) []fakeAsset {
	assets := make([]fakeAsset, n)
	for i := range assets {
		a := fakeAsset{
			ID:          randomID(),
			Status:      "ready",
			Duration:    float64(1200 + rand.Intn(300)),
			CreatedAt:   fmt.Sprintf("%d", time.Now().Add(-time.Duration(i)*time.Hour).Unix()),
			PlaybackIDs: []fakePlayback{{ID: randomID(), Policy: "public"}},
		}
		if *keyed {
			a.Passthrough = fmt.Sprintf("ep%d", i+1)
		}
		assets[i] = a
	}
	if *missingOne && n > 0 {
		assets[n-1].PlaybackIDs = nil
		assets[n-1].Status = "preparing"
	}
	return assets
}

func randomID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 32)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
