// Package server ranks log text sent over HTTP and WebSocket.
package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/websocket"

	"github.com/gopheracademy/logwords/internal/cliflag"
	"github.com/gopheracademy/logwords/internal/report"
	"github.com/gopheracademy/logwords/internal/source"
	"github.com/gopheracademy/logwords/rank"
)

const usage = `logwords server

POST log text to /top?k=N to get the N most frequent words as JSON.
Send log text as WebSocket messages to /ws to get one ranking per message.
`

// DefaultMaxBody limits the size of a POST /top body.
const DefaultMaxBody = 32 << 20

// Server is an http.Handler ranking the words of each request.
type Server struct {
	k       uint  // used when a request doesn't set k
	maxBody int64 // POST /top body limit in bytes
	mux     *http.ServeMux
}

// New returns a Server using k as the default number of words.
func New(k uint) *Server {
	srv := &Server{
		k:       k,
		maxBody: DefaultMaxBody,
		mux:     http.NewServeMux(),
	}
	srv.mux.HandleFunc("/", srv.indexHandler)
	srv.mux.HandleFunc("/top", srv.topHandler)
	srv.mux.Handle("/ws", websocket.Handler(srv.wsHandler))
	return srv
}

func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.mux.ServeHTTP(w, r)
}

func (srv *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, usage)
}

func (srv *Server) topHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	k := srv.k
	if s := r.URL.Query().Get("k"); s != "" {
		var err error
		if k, err = cliflag.ParseK(s); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	lines, err := source.Lines(http.MaxBytesReader(w, r.Body, srv.maxBody), nil)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, fmt.Sprintf("body larger than %d bytes", tooBig.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := report.JSON(w, rank.TopKWords(lines, k)); err != nil {
		log.Printf("error sending ranking: %v", err)
	}
}

func (srv *Server) wsHandler(ws *websocket.Conn) {
	for {
		var msg string
		if err := websocket.Message.Receive(ws, &msg); err != nil {
			return
		}

		lines, err := source.Lines(strings.NewReader(msg), nil)
		if err != nil {
			log.Printf("error reading message: %v", err)
			return
		}

		doc := report.Document{Words: rank.TopKWords(lines, srv.k)}
		if err := websocket.JSON.Send(ws, doc); err != nil {
			log.Printf("error sending ranking: %v", err)
			return
		}
	}
}
