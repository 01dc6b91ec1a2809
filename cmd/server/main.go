package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc"

	"DROWSY_DETECTOR/go-backend/internal/config"
	"DROWSY_DETECTOR/go-backend/internal/database"
	"DROWSY_DETECTOR/go-backend/internal/detection"
	"DROWSY_DETECTOR/go-backend/internal/handlers"
	"DROWSY_DETECTOR/go-backend/internal/models"
	"DROWSY_DETECTOR/go-backend/internal/services"
	"DROWSY_DETECTOR/go-backend/internal/session"
	"DROWSY_DETECTOR/go-backend/pkg/pb"
)

var (
	grpcServer *grpc.Server
	httpServer *http.Server

	appConfig      *config.Config
	landmarkClient *services.LandmarkClient
	settingsStore  *config.SettingsStore
	alertSinks     []session.AlertSink
	startTime      = time.Now()

	wsClients = &WebSocketClients{
		clients: make(map[string]*WebSocketClient),
	}
)

type WebSocketClient struct {
	conn     *websocket.Conn
	clientID string
	send     chan interface{}

	mu       sync.Mutex
	sessions *session.Manager
	seq      int32
	closed   bool
}

type WebSocketClients struct {
	mu      sync.RWMutex
	clients map[string]*WebSocketClient
	count   int32
}

type WebSocketMessage struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

type outMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

const statsEvery = 30

func main() {
	httpPort := flag.String("http-port", "", "HTTP port (overrides HTTP_PORT)")
	grpcPort := flag.String("grpc-port", "", "gRPC port (overrides GRPC_PORT)")
	landmarkURL := flag.String("landmark-url", "", "landmark service URL (overrides LANDMARK_SERVICE_URL)")
	flag.Parse()

	cfg := config.LoadConfig()
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *grpcPort != "" {
		cfg.GRPCPort = *grpcPort
	}
	if *landmarkURL != "" {
		cfg.LandmarkServiceURL = *landmarkURL
	}
	appConfig = cfg

	log.Println("Starting...")
	log.Printf("gRPC port: %s", cfg.GRPCPort)
	log.Printf("HTTP port: %s", cfg.HTTPPort)
	log.Printf("Landmark service: %s", cfg.LandmarkServiceURL)
	log.Printf("Environment: %s", cfg.Environment)

	settingsStore = config.NewSettingsStore(cfg.InitialSettings())
	handlers.SetSettingsStore(settingsStore)

	if err := database.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	var err error
	landmarkClient, err = services.NewLandmarkClient(cfg.LandmarkServiceURL)
	if err != nil {
		log.Printf("Landmark service unavailable: %v", err)
		log.Println("Continuing without landmark extraction (inline landmarks only)")
	}
	if landmarkClient != nil {
		defer landmarkClient.Close()
	}

	metrics := services.GetMetrics()
	alertSinks = []session.AlertSink{
		services.NewAlarmSink(settingsStore),
		services.NewNotifySink(),
		services.NewMetricsSink(metrics),
	}

	grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.MaxMessageSizeMB*1024*1024),
		grpc.MaxSendMsgSize(cfg.MaxMessageSizeMB*1024*1024),
	)
	grpcHandler := handlers.NewGRPCHandler(landmarkClient, alertSinks)
	pb.RegisterDrowsinessDetectionServer(grpcServer, grpcHandler)

	log.Println("Starting gRPC server...")
	go startGRPCServer(cfg.GRPCPort)

	log.Println("Starting HTTP server...")
	go startHTTPServer(cfg.HTTPPort)

	<-done
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		log.Println("Stopping gRPC server...")
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Println("Stopped")
	case <-shutdownCtx.Done():
		log.Println("Forced shutdown")
		grpcServer.Stop()
	}

	if httpServer != nil {
		httpShutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Println("Stopping HTTP server...")
		if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		} else {
			log.Println("HTTP server gracefully stopped")
		}
	}

	log.Println("Closing WebSocket connections...")
	closeAllWebSocketConnections()
	log.Println("All WebSocket connections closed...")

	log.Println("Goodbye!")
}

func startGRPCServer(grpcPort string) {
	port := grpcPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("failed to listen on gRPC port %v", err)
	}

	log.Printf("gRPC server listening on port %s", port)

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve gRPC server %v", err)
	}
}

func startHTTPServer(httpPort string) {
	port := httpPort
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", handleWebSocket)

	mux.HandleFunc("/api/detect", handleDetect)
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/metrics", handleMetrics)
	mux.HandleFunc("/api/settings", handleSettings)

	mux.HandleFunc("/api/auth/register", handlers.Register)
	mux.HandleFunc("/api/auth/login", handlers.Login)
	mux.HandleFunc("/api/auth/logout", handlers.Logout)
	mux.HandleFunc("/api/auth/me", handlers.GetCurrentUser)

	mux.HandleFunc("/api/sessions/create", handlers.CreateSession)
	mux.HandleFunc("/api/sessions/list", handlers.GetSessions)
	mux.HandleFunc("/api/sessions/end", handlers.EndSession)
	mux.HandleFunc("/api/sessions/delete", handlers.DeleteSession)

	mux.HandleFunc("/api/events/save", handlers.SaveEvent)
	mux.HandleFunc("/api/events/list", handlers.GetEvents)

	httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("HTTP server listening on port %s", port)
	log.Printf("WebSocket:  ws://localhost:%s/ws", port)
	log.Printf("REST API:   http://localhost:%s/api/*", port)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}

func handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		handlers.GetSettings(w, r)
		return
	}
	handlers.UpdateSettings(w, r)
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = generateClientID()
	}

	log.Printf("WebSocket client connected: %s", clientID)

	client := &WebSocketClient{
		conn:     conn,
		clientID: clientID,
		send:     make(chan interface{}, 256),
		sessions: session.NewManager(),
	}

	wsClients.mu.Lock()
	wsClients.clients[clientID] = client
	wsClients.mu.Unlock()
	atomic.AddInt32(&wsClients.count, 1)
	services.GetMetrics().IncrementWebSocketConnections()
	services.GetMetrics().SetActiveClients(int(atomic.LoadInt32(&wsClients.count)))

	defer func() {
		client.sessions.Stop()

		wsClients.mu.Lock()
		delete(wsClients.clients, clientID)
		wsClients.mu.Unlock()
		atomic.AddInt32(&wsClients.count, -1)
		services.GetMetrics().DecrementWebSocketConnections()
		services.GetMetrics().SetActiveClients(int(atomic.LoadInt32(&wsClients.count)))

		conn.Close()
		log.Printf("WebSocket client disconnected: %s", clientID)
	}()

	go writePump(client)

	client.reply("WELCOME", map[string]interface{}{
		"message": "Connected to Drowsiness Detection Server",
		"version": "2.0",
	})

	readPump(client)
}

func (c *WebSocketClient) reply(msgType string, payload interface{}) {
	msg := outMessage{
		Type:      msgType,
		Payload:   payload,
		ClientID:  c.clientID,
		Timestamp: time.Now().Unix(),
	}
	// Shutdown closes the send channel; a late update pump must not
	// write into it.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		// Slow consumer: keeping the frame loop alive matters more
		// than any single snapshot.
		services.GetMetrics().IncrementWebSocketErrors()
	}
}

func (c *WebSocketClient) replyError(code, text string) {
	c.reply("ERROR", models.ErrorResponse{
		Error:     text,
		Code:      code,
		Timestamp: time.Now().Unix(),
	})
}

func readPump(client *WebSocketClient) {
	defer func() {
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg WebSocketMessage
		err := client.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for %s: %v", client.clientID, err)
				services.GetMetrics().IncrementWebSocketErrors()
			}
			break
		}

		services.GetMetrics().IncrementWebSocketMessages()

		switch msg.Type {
		case "PING":
			client.reply("PONG", nil)

		case "SESSION_START":
			client.handleSessionStart(msg.Payload)

		case "FRAME":
			client.handleFrame(msg.Payload)

		case "SESSION_END":
			client.handleSessionEnd()

		default:
			log.Printf("Unknown message type from %s: %s", client.clientID, msg.Type)
			client.replyError("UNKNOWN_TYPE", "unknown message type: "+msg.Type)
		}
	}
}

func (c *WebSocketClient) handleSessionStart(payload json.RawMessage) {
	var req models.StartSessionRequest
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			c.replyError("BAD_PAYLOAD", "invalid session start payload")
			return
		}
	}

	mode := session.ModeLive
	switch req.Mode {
	case "", string(session.ModeLive):
	case string(session.ModePlayback):
		mode = session.ModePlayback
	default:
		c.replyError("BAD_MODE", "mode must be 'live' or 'playback'")
		return
	}

	settings := settingsStore.Current()

	fps := req.FPS
	if fps <= 0 {
		fps = appConfig.CameraTargetFPS
	}

	worker := c.sessions.Start(session.Options{
		Mode:           mode,
		AlertThreshold: settings.AlertThresholdFrames,
		AlertCooldown:  settings.AlertCooldown,
		TargetFPS:      fps,
		Sinks:          alertSinks,
	})

	c.mu.Lock()
	c.seq = 0
	c.mu.Unlock()

	go c.pumpUpdates(worker)

	log.Printf("Session started for %s: mode=%s fps=%.1f", c.clientID, mode, fps)
	c.reply("SESSION_STARTED", map[string]interface{}{
		"mode": string(mode),
		"fps":  fps,
	})
}

// pumpUpdates forwards worker snapshots to the client until the
// session ends, then sends the summary exactly once.
func (c *WebSocketClient) pumpUpdates(worker *session.Worker) {
	var lastState session.State
	for update := range worker.Updates() {
		c.reply("RESULT", models.NewDetectionResult(update))

		if update.AlertState == session.StateAlerting && lastState != session.StateAlerting {
			c.reply("ALERT", map[string]interface{}{
				"message":           "Drowsiness detected! Take a break.",
				"consecutive":       update.Stats.ConsecutiveDrowsy,
				"score":             update.Result.Score,
				"sequence_number":   update.Seq,
				"frame_timestamp":   update.Timestamp,
				"cooldown_seconds":  settingsStore.Current().AlertCooldown.Seconds(),
				"alerting_duration": 3.0,
			})
		}
		lastState = update.AlertState

		if update.Stats.FramesAnalyzed%statsEvery == 0 {
			c.reply("STATS", update.Stats)
		}
	}

	<-worker.Done()

	payload := map[string]interface{}{
		"summary": worker.Summary(),
	}
	if err := worker.Err(); err != nil {
		payload["error"] = err.Error()
	}
	c.reply("SUMMARY", payload)
}

func (c *WebSocketClient) handleFrame(payload json.RawMessage) {
	worker := c.sessions.Active()
	if worker == nil {
		c.replyError("NO_SESSION", "no active session; send SESSION_START first")
		return
	}

	var frame models.VideoFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		c.replyError("BAD_PAYLOAD", "invalid frame payload")
		return
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()
	if frame.SequenceNumber != 0 {
		seq = frame.SequenceNumber
	}
	if frame.Timestamp == 0 {
		frame.Timestamp = time.Now().UnixMilli()
	}

	obs := session.Observation{
		Seq:       seq,
		Timestamp: frame.Timestamp,
	}

	switch {
	case len(frame.Landmarks) > 0 || (frame.FaceFound != nil && !*frame.FaceFound):
		// Client ran the face mesh itself.
		if frame.FaceFound == nil || *frame.FaceFound {
			obs.Landmarks = detection.LandmarkSet(frame.Landmarks)
		}

	case frame.Frame != "":
		if landmarkClient == nil {
			c.replyError("NO_LANDMARK_SERVICE", "landmark service unavailable")
			return
		}
		data, err := base64.StdEncoding.DecodeString(frame.Frame)
		if err != nil {
			c.replyError("BAD_FRAME", "frame is not valid base64")
			return
		}
		landmarks, err := landmarkClient.DetectLandmarks(context.Background(), &pb.VideoFrame{
			FrameData:      data,
			Timestamp:      frame.Timestamp,
			SequenceNumber: seq,
			Enhanced:       settingsStore.Current().EnhancementEnabled,
		})
		if err != nil {
			log.Printf("Landmark extraction failed for %s: %v", c.clientID, err)
			obs.StreamErr = err
			worker.Submit(obs)
			return
		}
		obs.Landmarks = landmarks

	default:
		c.replyError("BAD_FRAME", "frame must carry image data or landmarks")
		return
	}

	if !worker.Submit(obs) {
		c.replyError("SESSION_ENDED", "session is no longer accepting frames")
	}
}

func (c *WebSocketClient) handleSessionEnd() {
	worker := c.sessions.Active()
	if worker == nil {
		c.replyError("NO_SESSION", "no active session")
		return
	}
	// Drain queued frames so the summary covers everything submitted;
	// the update pump sends SUMMARY when the worker exits.
	worker.Finish()
}

func writePump(client *WebSocketClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleDetect assesses a single frame outside any session. Inline
// landmarks are scored directly; image frames go through the landmark
// service first.
func handleDetect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:     "Method not allowed",
			Timestamp: time.Now().Unix(),
		})
		return
	}

	var frame models.VideoFrame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:     "Invalid frame payload",
			Timestamp: time.Now().Unix(),
		})
		return
	}

	var landmarks detection.LandmarkSet
	switch {
	case len(frame.Landmarks) > 0:
		landmarks = detection.LandmarkSet(frame.Landmarks)

	case frame.Frame != "":
		if landmarkClient == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error:     "Landmark service unavailable",
				Timestamp: time.Now().Unix(),
			})
			return
		}
		data, err := base64.StdEncoding.DecodeString(frame.Frame)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error:     "Frame is not valid base64",
				Timestamp: time.Now().Unix(),
			})
			return
		}
		landmarks, err = landmarkClient.DetectLandmarks(r.Context(), &pb.VideoFrame{
			FrameData: data,
			Timestamp: frame.Timestamp,
			Enhanced:  settingsStore.Current().EnhancementEnabled,
		})
		if err != nil {
			log.Printf("/api/detect landmark error: %v", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error:     "Landmark extraction failed",
				Timestamp: time.Now().Unix(),
			})
			return
		}
	}

	result := detection.ProcessFrame(landmarks)

	metrics := services.GetMetrics()
	metrics.IncrementFrames()
	if result.NoFace() {
		metrics.IncrementNoFace()
	}
	if result.Score >= detection.ScoreDrowsy {
		metrics.IncrementDrowsyDetections()
	}

	update := session.Update{
		Seq:       frame.SequenceNumber,
		Timestamp: frame.Timestamp,
		Result:    result,
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewDetectionResult(update))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:     "Method not allowed",
			Timestamp: time.Now().Unix(),
		})
		return
	}

	landmarksHealthy := false
	if landmarkClient != nil {
		landmarksHealthy = landmarkClient.HealthCheck()
	}

	wsClients.mu.RLock()
	activeClients := len(wsClients.clients)
	wsClients.mu.RUnlock()

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.HealthStatus{
		Status:          "healthy",
		GoBackend:       "running",
		LandmarkService: landmarksHealthy,
		ActiveClients:   activeClients,
		Uptime:          time.Since(startTime).Round(time.Second),
		Version:         "2.0",
	})
}

func handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:     "Method not allowed",
			Timestamp: time.Now().Unix(),
		})
		return
	}

	m := services.GetMetrics()

	wsClients.mu.RLock()
	activeClients := len(wsClients.clients)
	wsClients.mu.RUnlock()

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_frames":      m.GetTotalFrames(),
		"no_face_frames":    m.GetNoFaceFrames(),
		"total_errors":      m.GetTotalErrors(),
		"drowsy_detections": m.GetDrowsyDetections(),
		"alerts_fired":      m.GetAlertsFired(),
		"detection_rate":    m.GetDetectionRate(),
		"avg_latency_ms":    m.GetAvgLatency(),
		"active_clients":    activeClients,
		"websocket":         m.GetWebSocketMetrics(),
		"system_uptime_sec": int(time.Since(startTime).Seconds()),
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}

func generateClientID() string {
	return "client-" + time.Now().Format("20060102150405.000000")
}

func closeAllWebSocketConnections() {
	wsClients.mu.Lock()
	defer wsClients.mu.Unlock()

	for clientID, client := range wsClients.clients {
		client.sessions.Stop()
		client.mu.Lock()
		client.closed = true
		client.mu.Unlock()
		close(client.send)
		client.conn.Close()
		log.Printf("Closed connection for client: %s", clientID)
	}
	wsClients.clients = make(map[string]*WebSocketClient)
}
