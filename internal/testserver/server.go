// Package testserver runs an in-process stand-in for the central server:
// the HTTP API the device calls and a Socket.IO push endpoint. It is used by
// the transport and device tests.
package testserver

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// Upload is a multipart upload received by the server.
type Upload struct {
	Path     string
	FileName string
	Data     []byte
	From     string
}

// Server is the fake server. The zero value is not usable; use New.
type Server struct {
	httpServer *httptest.Server
	upgrader   websocket.Upgrader

	mu             sync.Mutex
	conns          map[*websocket.Conn]struct{}
	connectCount   int
	sidSeq         int
	rejectHTTP     bool
	connectError   string
	silentOpen     bool
	pongs          int
	uploads        []Upload
	processStatus  int
	processBody    any
	artifacts      map[string][]byte
	requests       map[string]int
	memory         []models.MemoryItem
	memorySeq      int64
	memoryClock    time.Time
	connectedNotif chan string
}

// New starts the server; it is closed by Close.
func New() *Server {
	s := &Server{
		upgrader:       websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		conns:          make(map[*websocket.Conn]struct{}),
		processStatus:  http.StatusOK,
		processBody:    models.UploadResult{Success: true, Transcription: "hola", ItemsSaved: 0, ResponseText: "ok"},
		artifacts:      make(map[string][]byte),
		requests:       make(map[string]int),
		memoryClock:    time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC),
		connectedNotif: make(chan string, 64),
	}
	s.httpServer = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.countRequests)

	r.Get("/socket.io/", s.socket)
	r.Post("/api/agent/process-audio", s.processAudio)
	r.Post("/api/agent/memory", s.saveMemory)
	r.Get("/api/agent/memory", s.loadMemory)
	r.Post("/api/audio/message", s.audioMessage)
	r.Get("/api/activities", s.activities)
	r.Get("/uploads/*", s.artifact)

	return r
}

// URL is the http base URL of the server.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close drops every push connection and stops the server.
func (s *Server) Close() {
	s.DropConnections()
	s.httpServer.Close()
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.Method+" "+r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Requests returns how many requests hit "METHOD /path".
func (s *Server) Requests(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[key]
}

// ── push channel ─────────────────────────────────────────────────────────────

// RejectHandshake makes the push endpoint answer 403 instead of upgrading.
func (s *Server) RejectHandshake(reject bool) {
	s.mu.Lock()
	s.rejectHTTP = reject
	s.mu.Unlock()
}

// FailConnect makes the namespace join answer CONNECT_ERROR with msg. An
// empty msg restores normal behaviour.
func (s *Server) FailConnect(msg string) {
	s.mu.Lock()
	s.connectError = msg
	s.mu.Unlock()
}

// StallHandshake makes the server upgrade but never send the open packet.
func (s *Server) StallHandshake(stall bool) {
	s.mu.Lock()
	s.silentOpen = stall
	s.mu.Unlock()
}

// Connected returns a channel receiving the sid of every established session.
func (s *Server) Connected() <-chan string {
	return s.connectedNotif
}

// ConnectCount is the number of sessions established so far.
func (s *Server) ConnectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectCount
}

// ActiveConnections is the number of live push connections.
func (s *Server) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Pongs is the number of heartbeat answers received.
func (s *Server) Pongs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pongs
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	reject, connectError, silent := s.rejectHTTP, s.connectError, s.silentOpen
	s.mu.Unlock()

	if reject || r.URL.Query().Get("EIO") != "4" || r.URL.Query().Get("transport") != "websocket" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.sidSeq++
	sid := "sid-" + strconv.Itoa(s.sidSeq)
	s.mu.Unlock()

	go s.serveConn(conn, sid, connectError, silent)
}

func (s *Server) serveConn(conn *websocket.Conn, sid, connectError string, silent bool) {
	defer s.forget(conn)

	if silent {
		// hold the socket open without speaking
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}

	open := fmt.Sprintf(`0{"sid":"engine-%s","upgrades":[],"pingInterval":25000,"pingTimeout":20000,"maxPayload":1000000}`, sid)
	if err := s.writeTo(conn, []byte(open)); err != nil {
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		switch string(raw) {
		case "40":
			if connectError != "" {
				_ = s.writeTo(conn, []byte(fmt.Sprintf(`44{"message":%q}`, connectError)))
				continue
			}
			if err = s.writeTo(conn, []byte(fmt.Sprintf(`40{"sid":%q}`, sid))); err != nil {
				return
			}
			s.mu.Lock()
			s.connectCount++
			s.mu.Unlock()
			s.connectedNotif <- sid
		case "3":
			s.mu.Lock()
			s.pongs++
			s.mu.Unlock()
		case "41":
			return
		}
	}
}

func (s *Server) forget(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

// writeTo serialises writes per connection via the server lock.
func (s *Server) writeTo(conn *websocket.Conn, frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
	return conn.WriteMessage(websocket.TextMessage, frame)
}

func (s *Server) broadcast(frame []byte) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = s.writeTo(c, frame)
	}
}

// SendRaw writes frame verbatim to every live push connection.
func (s *Server) SendRaw(frame string) {
	s.broadcast([]byte(frame))
}

// Emit pushes a Socket.IO event to every live push connection.
func (s *Server) Emit(name string, payload any) error {
	frame, err := encodeEvent(name, payload)
	if err != nil {
		return err
	}
	s.broadcast(frame)
	return nil
}

// Ping sends an Engine.IO heartbeat to every live connection.
func (s *Server) Ping() {
	s.broadcast([]byte("2"))
}

// Disconnect sends a Socket.IO DISCONNECT to every live connection.
func (s *Server) Disconnect() {
	s.broadcast([]byte("41"))
}

// DropConnections closes every push connection without a close handshake.
func (s *Server) DropConnections() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.NetConn().Close()
	}
}

// ── HTTP API ─────────────────────────────────────────────────────────────────

// SetProcessResponse sets the status and JSON body of process-audio.
func (s *Server) SetProcessResponse(status int, body any) {
	s.mu.Lock()
	s.processStatus = status
	s.processBody = body
	s.mu.Unlock()
}

// Uploads returns the multipart uploads received so far.
func (s *Server) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Upload(nil), s.uploads...)
}

// SetArtifact serves data at path (which must start with /uploads/).
func (s *Server) SetArtifact(path string, data []byte) {
	s.mu.Lock()
	s.artifacts[path] = data
	s.mu.Unlock()
}

func (s *Server) readUpload(r *http.Request) (Upload, error) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		return Upload{}, err
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return Upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Upload{}, err
	}

	up := Upload{Path: r.URL.Path, FileName: hdr.Filename, Data: data, From: r.FormValue("from")}
	s.mu.Lock()
	s.uploads = append(s.uploads, up)
	s.mu.Unlock()
	return up, nil
}

func (s *Server) processAudio(w http.ResponseWriter, r *http.Request) {
	if _, err := s.readUpload(r); err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "No audio file uploaded"}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	status, body := s.processStatus, s.processBody
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, body, status)
}

func (s *Server) audioMessage(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(r)
	if err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "No audio file uploaded"}, http.StatusBadRequest)
		return
	}

	from := up.From
	if from == "" {
		from = "device"
	}

	s.mu.Lock()
	id := int64(len(s.uploads))
	s.mu.Unlock()

	fileURL := fmt.Sprintf("/uploads/audio/message-%d.wav", id)
	s.SetArtifact(fileURL, up.Data)

	_, _ = utils.WriteJSON(w, models.AudioMessageResult{ID: id, FromSource: from, FileURL: fileURL}, http.StatusCreated)
}

func (s *Server) activities(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, []models.NewActivity{}, http.StatusOK)
}

func (s *Server) artifact(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, ok := s.artifacts[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(data)
}
