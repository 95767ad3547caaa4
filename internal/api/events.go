package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mosswm/mosswm/internal/bus"
)

// events streams LayoutApplied events to the client as server-sent events.
func events(hub *bus.Hub[bus.LayoutApplied]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")

		// Subscribe before the preamble so clients never miss events
		// published after the response headers arrive.
		eventC, unsubscribe := hub.Subscribe(r.Context())
		defer unsubscribe()

		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case event := <-eventC:
				data, err := json.Marshal(event)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "data: %s\n\n", data)
				flusher.Flush()
			}
		}
	}
}
